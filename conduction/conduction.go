package conduction

import (
	"math"

	"ht/units"
)

// 稳态导热的换算公式
// 1. 平板: 热阻 R 与 导热系数 k 互换，R = t / (k*A)
// 2. 热阻率 r 为导热系数的倒数，r = 1/k
// 3. R值: 保温行业按每英寸厚度标定的热阻率，分国际单位制和英制两种
// 4. 圆筒壁: 径向稳态导热热阻
// 输入不做校验，非法输入(分母为0或负数)按IEEE浮点规则得到 Inf/NaN，由调用方保证

// 英制R值 ft²·°F·h/(BTU·inch) 折算成国际单位热阻率 m·K/W 的系数，约6.93347
const imperialRValue = units.Foot * units.Foot * units.DegreeFahrenheit * units.Hour / units.BTU / units.Inch

// 由热阻换算导热系数，k = t / (R*A)
// t为测定R时的厚度，A通常取1，表示单位面积
func RToK(R, t, A float64) float64 {
	return t / (A * R)
}

// 由导热系数换算热阻，R = t / (k*A)
func KToR(k, t, A float64) float64 {
	return t / (k * A)
}

// 由导热系数换算热阻率，r = 1/k
// 热阻率和热阻是两个概念，单位 m·K/W
func KToThermalResistivity(k float64) float64 {
	return 1.0 / k
}

// 由热阻率换算导热系数，k = 1/r
func ThermalResistivityToK(r float64) float64 {
	return 1.0 / r
}

// 由R值换算导热系数
// SI为true时R值单位为 m²·K/(W·inch)，否则为英制 ft²·°F·h/(BTU·inch)
func RValueToK(RValue float64, SI bool) float64 {
	var r float64
	if SI {
		r = RValue / units.Inch
	} else {
		r = RValue * imperialRValue
	}
	return ThermalResistivityToK(r)
}

// 由导热系数换算R值，RValueToK 的逆运算
func KToRValue(k float64, SI bool) float64 {
	r := KToThermalResistivity(k)
	if SI {
		return r * units.Inch
	}
	return r / imperialRValue
}

// 圆筒壁导热热阻
// Di、Do为内外直径，k为导热系数，L为筒长
// (hA) = k * 2π * L / ln(Do/Di)，R = 1/(hA)
// Do等于Di时壁厚为0，对数项为0，返回NaN
func RCylinder(Di, Do, k, L float64) float64 {
	lnRatio := math.Log(Do / Di)
	if lnRatio == 0 {
		return math.NaN()
	}
	hA := k * 2 * math.Pi * L / lnRatio
	return 1.0 / hA
}

// 串联热阻求和
func RSeries(R ...float64) float64 {
	var sum float64
	for _, r := range R {
		sum += r
	}
	return sum
}

// 多层平板串联热阻，逐层按 t/(k*A) 累加
// ts、ks按层一一对应，长度取两者较小值
func RLayeredWall(ts, ks []float64, A float64) float64 {
	n := len(ts)
	if len(ks) < n {
		n = len(ks)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += KToR(ks[i], ts[i], A)
	}
	return sum
}
