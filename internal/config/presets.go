package config

var Presets = map[string]*Config{
	"classic": {
		CameraSpeed:        DefaultCameraSpeed,
		PhysicsRefreshRate: 120,
		TrailLifetime:      100,
		NumOfTrails:        10,
		InitialDistance:    0.01,
		DeltaT:             50,
		Sigma:              10, Rho: 28, Beta: 8.0 / 3.0,
	},
	"dense": {
		CameraSpeed:        DefaultCameraSpeed,
		PhysicsRefreshRate: 240,
		TrailLifetime:      60,
		NumOfTrails:        40,
		InitialDistance:    0.005,
		DeltaT:             30,
		Sigma:              10, Rho: 28, Beta: 8.0 / 3.0,
	},
	"sparse": {
		CameraSpeed:        DefaultCameraSpeed,
		PhysicsRefreshRate: 60,
		TrailLifetime:      150,
		NumOfTrails:        3,
		InitialDistance:    0.05,
		DeltaT:             50,
		Sigma:              10, Rho: 28, Beta: 8.0 / 3.0,
	},
	"slow-fade": {
		CameraSpeed:        DefaultCameraSpeed,
		RotateCamera:       true,
		PhysicsRefreshRate: 120,
		TrailLifetime:      300,
		NumOfTrails:        10,
		InitialDistance:    0.01,
		DeltaT:             25,
		Sigma:              10, Rho: 28, Beta: 8.0 / 3.0,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
