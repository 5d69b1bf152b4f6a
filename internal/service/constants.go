package service

const (
	MaxExShowroom   = 500_000_000 // 50 crore
	MaxRatePercent  = 100.0
	MaxTenureMonths = 600
	MinTenureMonths = 1

	DefaultRadiusKm = 250.0
	MaxRadiusKm     = 5000.0
	DefaultLimit    = 8
	MaxLimit        = 50
)
