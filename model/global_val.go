package model

// 全局物理常数，配置后不再修改

const (
	// FLA 方程组的维数，J 四个分量 + W 四个分量
	NEq = 8

	// 空气气体常数，J/(kg K)
	RAir = 287.01625988193461525183829875375

	// 空气摩尔质量，kg/kmol
	AirMolWeight = 28.967

	// 除零保护下限
	DPMSmall = 1e-15
)
