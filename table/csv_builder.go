package table

import (
	"sort"
	"strconv"

	"drsa-shenglin/rock-share/base/logger"
	"drsa-shenglin/rock-share/global/enum"
	"drsa-shenglin/rock-share/global/model/drsa"
	"drsa-shenglin/utils"
)

// AttributeSpec 外部请求对一列数据的描述
type AttributeSpec struct {
	Name       string   `json:"name"`
	Kind       string   `json:"kind"`       // condition / decision / description
	Preference string   `json:"preference"` // gain / cost / none
	ValueType  string   `json:"valueType"`  // int64 / float64 / enum
	MissingTyp string   `json:"missingType"`
	Active     bool     `json:"active"`
	// EnumDomain 枚举型取值从差到好的排列，留空时按字典序补齐
	EnumDomain []string `json:"enumDomain"`
}

// missingCell csv里这些写法当缺失值
func missingCell(cell string) bool {
	return cell == "" || cell == "?"
}

// NewInformationTableFromCsv 首行是表头，按列描述解析出信息表。
// 列描述顺序须与表头一致，行里解析不动的单元格直接报参数错
func NewInformationTableFromCsv(data [][]string, specs []AttributeSpec) (*InformationTable, error) {
	if len(data) == 0 || len(specs) == 0 {
		return nil, utils.ErrParameter
	}
	header := data[0]
	if len(header) != len(specs) {
		logger.Errorf("表头%d列与列描述%d条对不上", len(header), len(specs))
		return nil, utils.ErrParameter
	}
	for col, spec := range specs {
		if header[col] != spec.Name {
			logger.Errorf("第%d列表头%s与列描述%s对不上", col, header[col], spec.Name)
			return nil, utils.ErrColumnNotExist
		}
	}
	rows := data[1:]

	attributes := make([]*drsa.Attribute, len(specs))
	columns := make([][]drsa.Field, len(specs))
	for col, spec := range specs {
		attr, err := spec.toAttribute()
		if err != nil {
			return nil, err
		}
		attributes[col] = attr

		fields, err := parseColumn(rows, col, spec, attr)
		if err != nil {
			return nil, err
		}
		columns[col] = fields
	}
	return NewInformationTable(attributes, columns)
}

func (s AttributeSpec) toAttribute() (*drsa.Attribute, error) {
	kind, ok := map[string]string{
		"condition":   enum.ConditionAttribute,
		"decision":    enum.DecisionAttribute,
		"description": enum.DescriptionAttribute,
	}[s.Kind]
	if !ok {
		return nil, utils.ErrParameter
	}
	preference, ok := map[string]string{
		"gain": enum.Gain,
		"cost": enum.Cost,
		"none": enum.None,
		"":     enum.None,
	}[s.Preference]
	if !ok {
		return nil, utils.ErrParameter
	}
	if s.ValueType != enum.IntType && s.ValueType != enum.RealType && s.ValueType != enum.EnumType {
		return nil, utils.ErrWrongDataType
	}
	missingTyp := s.MissingTyp
	if missingTyp == "" {
		missingTyp = enum.MV2
	}
	if missingTyp != enum.MV15 && missingTyp != enum.MV2 {
		return nil, utils.ErrParameter
	}
	return &drsa.Attribute{
		Name:       s.Name,
		Active:     s.Active,
		Kind:       kind,
		Preference: preference,
		ValueType:  s.ValueType,
		MissingTyp: missingTyp,
	}, nil
}

func parseColumn(rows [][]string, col int, spec AttributeSpec, attr *drsa.Attribute) ([]drsa.Field, error) {
	domain := spec.EnumDomain
	if attr.ValueType == enum.EnumType && len(domain) == 0 {
		domain = collectDomain(rows, col)
	}
	labelIndex := make(map[string]int, len(domain))
	for i, label := range domain {
		labelIndex[label] = i
	}

	fields := make([]drsa.Field, len(rows))
	for row, record := range rows {
		if col >= len(record) {
			return nil, utils.ErrReadCsv
		}
		cell := record[col]
		if missingCell(cell) {
			fields[row] = attr.MissingField()
			continue
		}
		switch attr.ValueType {
		case enum.IntType:
			v, err := strconv.ParseInt(cell, 10, 64)
			if err != nil {
				logger.Errorf("第%d行%s列整数解析失败:%s", row+1, attr.Name, cell)
				return nil, utils.ErrWrongDataType
			}
			fields[row] = drsa.NewIntegerField(v, attr.Preference)
		case enum.RealType:
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				logger.Errorf("第%d行%s列实数解析失败:%s", row+1, attr.Name, cell)
				return nil, utils.ErrWrongDataType
			}
			fields[row] = drsa.NewRealField(v, attr.Preference)
		default:
			idx, ok := labelIndex[cell]
			if !ok {
				logger.Errorf("第%d行%s列枚举值不在取值域里:%s", row+1, attr.Name, cell)
				return nil, utils.ErrWrongDataType
			}
			fields[row] = drsa.NewEnumerationField(idx, cell, attr.Preference)
		}
	}
	return fields, nil
}

func collectDomain(rows [][]string, col int) []string {
	seen := map[string]bool{}
	var domain []string
	for _, record := range rows {
		if col >= len(record) {
			continue
		}
		cell := record[col]
		if missingCell(cell) || seen[cell] {
			continue
		}
		seen[cell] = true
		domain = append(domain, cell)
	}
	sort.Strings(domain)
	return domain
}
