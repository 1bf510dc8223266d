package units

// 单位换算常量，全部折算到国际单位制
// R值换算对BTU的取值很敏感（第5~6位有效数字），统一采用国际蒸汽表定义

const (
	Inch = 0.0254        // 英寸, m
	Foot = 0.3048        // 英尺, m
	Hour = 3600.0        // 小时, s
	BTU  = 1055.05585262 // 英热单位(国际蒸汽表), J

	// 1华氏度对应的温差大小, K
	// 注意这里是温差换算系数，不是温度值的仿射变换
	DegreeFahrenheit = 5.0 / 9.0
)
