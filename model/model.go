package model

// 前后端通信消息结构
// Content 中携带各类请求/应答的JSON串
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// 单位制标识
const (
	UnitSystemSI       = "si"       // 国际单位制
	UnitSystemImperial = "imperial" // 英制
)

// 平板换算请求，R <-> k
// Area 为0时按单位面积处理
type PlaneReq struct {
	R         float64 `json:"r"`
	K         float64 `json:"k"`
	Thickness float64 `json:"thickness"`
	Area      float64 `json:"area"`
}

// 热阻率换算请求，r <-> k
type ResistivityReq struct {
	K float64 `json:"k"`
	R float64 `json:"r"`
}

// R值换算请求
// UnitSystem 为空时默认国际单位制
type RValueReq struct {
	RValue     float64 `json:"r_value"`
	K          float64 `json:"k"`
	UnitSystem string  `json:"unit_system"`
}

// 圆筒壁热阻请求
type CylinderReq struct {
	Di float64 `json:"di"`
	Do float64 `json:"do"`
	K  float64 `json:"k"`
	L  float64 `json:"l"`
}

// 材料查询请求
type MaterialReq struct {
	Number     int     `json:"number"`
	Thickness  float64 `json:"thickness"`
	Area       float64 `json:"area"`
	UnitSystem string  `json:"unit_system"`
}

// 换算结果
type Result struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// 材料查询结果
type MaterialResult struct {
	Number      int     `json:"number"`
	Name        string  `json:"name"`
	Lambda      float64 `json:"lambda"`
	Resistivity float64 `json:"resistivity"`
	RValue      float64 `json:"r_value"`
	ROfSlab     float64 `json:"r_of_slab"`
}

// 历史记录里的一条换算
type Record struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// 历史查询结果
type HistoryResult struct {
	Records []Record `json:"records"`
}
