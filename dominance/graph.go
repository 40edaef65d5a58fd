package dominance

import (
	"fmt"
	"os"

	"github.com/awalterschulze/gographviz"

	"drsa-shenglin/rock-share/base/logger"
	"drsa-shenglin/table"
)

// ToSimpleGraph 把支配关系导出成graphviz有向图，调试用。
// 结点是对象(带决策标签)，边y->x表示y支配x，自环不画
func ToSimpleGraph(t *table.InformationTable, outPath string) {
	graphAst, _ := gographviz.Parse([]byte(`digraph G{}`))
	graph := gographviz.NewGraph()
	gographviz.Analyse(graphAst, graph)

	decisions := t.Decisions(true)
	n := t.NumberOfObjects()
	for i := 0; i < n; i++ {
		label := "?"
		if decisions != nil && decisions[i] != nil {
			label = decisions[i].String()
		}
		graph.AddNode("G", fmt.Sprintf("%d", i), map[string]string{
			"label": fmt.Sprintf("<id = %d<br/>decision = %s>", i, label),
		})
	}

	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if y == x {
				continue
			}
			if Dominates(t, y, x) {
				graph.AddEdge(fmt.Sprintf("%d", y), fmt.Sprintf("%d", x), true, nil)
			}
		}
	}

	out, err := os.Create(outPath)
	if err != nil {
		logger.Errorf("error when open file:%s--%v", outPath, err)
		return
	}
	_, err = out.WriteString(graph.String())
	if err != nil {
		logger.Errorf("error when write to file:%s--%v", outPath, err)
		return
	}
	err = out.Close()
	if err != nil {
		logger.Errorf("error when close file:%s--%v", outPath, err)
		return
	}
}
