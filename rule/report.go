package rule

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderReport 把规则集和特征打印成表格，给日志和控制台看
func RenderReport(rs *RuleSetWithCharacteristics, out io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "#", Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Name: "Rule", AlignHeader: text.AlignCenter, WidthMax: 90},
		{Name: "Support", Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Name: "Strength", Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Name: "Coverage Factor", Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Name: "Confidence", Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Name: "Epsilon", Align: text.AlignRight, AlignHeader: text.AlignCenter},
	})
	t.SetTitle("INDUCED RULES")
	t.AppendHeader(table.Row{"#", "Rule", "Support", "Strength", "Coverage Factor", "Confidence", "Epsilon"})
	for i := 0; i < rs.Size(); i++ {
		rc := rs.RuleCharacteristics(i)
		t.AppendRow(table.Row{
			i,
			rs.Rule(i).String(),
			formatIntCharacteristic(rc.Support),
			formatFloatCharacteristic(rc.Strength),
			formatFloatCharacteristic(rc.CoverageFactor),
			formatFloatCharacteristic(rc.Confidence),
			formatFloatCharacteristic(rc.Epsilon),
		})
	}
	t.Render()
}
