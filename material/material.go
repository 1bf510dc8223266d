package material

import (
	log "github.com/sirupsen/logrus"

	"ht/conduction"
)

// 常用材料的导热系数表，单位 W/(m·K)
// 数值取常温下的典型值

type Material struct {
	Number int
	Name   string
	Lambda float64 // 导热系数
}

// 材料编号
const (
	GlassWool    = 1 // 玻璃棉
	Polyurethane = 2 // 聚氨酯泡沫
	EPS          = 3 // 聚苯乙烯泡沫
	RockWool     = 4 // 岩棉
	RedBrick     = 5 // 红砖
	Concrete     = 6 // 混凝土
	CarbonSteel  = 7 // 碳钢
	Copper       = 8 // 紫铜
)

var table = map[int]Material{
	GlassWool:    {GlassWool, "玻璃棉", 0.04},
	Polyurethane: {Polyurethane, "聚氨酯泡沫", 0.025},
	EPS:          {EPS, "聚苯乙烯泡沫", 0.033},
	RockWool:     {RockWool, "岩棉", 0.045},
	RedBrick:     {RedBrick, "红砖", 0.6},
	Concrete:     {Concrete, "混凝土", 1.28},
	CarbonSteel:  {CarbonSteel, "碳钢", 45.0},
	Copper:       {Copper, "紫铜", 398.0},
}

// 根据材料编号获取材料信息
// 编号不存在时返回nil
// todo 后续从材料物性库接口获取随温度变化的导热系数
func NewMaterial(number int) *Material {
	m, ok := table[number]
	if !ok {
		log.Warn("未知材料编号: ", number)
		return nil
	}
	log.WithFields(log.Fields{
		"Number": m.Number,
		"Name":   m.Name,
		"Lambda": m.Lambda,
	}).Info("材料已加载")
	return &m
}

// 热阻率, m·K/W
func (m *Material) Resistivity() float64 {
	return conduction.KToThermalResistivity(m.Lambda)
}

// 按每英寸厚度标定的R值
func (m *Material) RValue(SI bool) float64 {
	return conduction.KToRValue(m.Lambda, SI)
}

// 厚度为t、面积为A的平板热阻
func (m *Material) ROfSlab(t, A float64) float64 {
	return conduction.KToR(m.Lambda, t, A)
}

// 内外直径为Di、Do，长度为L的圆筒壁热阻
func (m *Material) ROfPipe(Di, Do, L float64) float64 {
	return conduction.RCylinder(Di, Do, m.Lambda, L)
}
