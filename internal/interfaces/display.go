package interfaces

//go:generate go tool mockgen -source=display.go -destination=mocks/mock_display.go -package=mocks

// Display shows the wave number and the count of enemies left.
type Display interface {
	SetWave(wave int)
	SetEnemiesLeft(count int)
}
