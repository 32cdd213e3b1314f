// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window      WindowConfig     `yaml:"window"`
	Camera      CameraConfig     `yaml:"camera"`
	Simulation  SimulationConfig `yaml:"simulation"`
	Assets      AssetsConfig     `yaml:"assets"`
	Audio       AudioConfig      `yaml:"audio"`
	Logging     LoggingConfig    `yaml:"logging"`
	Screenshots ScreenshotConfig `yaml:"screenshots"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds camera limits and sensitivities.
type CameraConfig struct {
	FOV              float32 `yaml:"fov"` // degrees
	MinFOV           float32 `yaml:"min_fov"`
	MaxFOV           float32 `yaml:"max_fov"`
	OrbitDistance    float32 `yaml:"orbit_distance"`
	OrbitMinDistance float32 `yaml:"orbit_min_distance"`
	OrbitMaxDistance float32 `yaml:"orbit_max_distance"`
	FocusDistance    float32 `yaml:"focus_distance"`
	FocusMinDistance float32 `yaml:"focus_min_distance"`
	FocusMaxDistance float32 `yaml:"focus_max_distance"`
	DragSensitivity  float32 `yaml:"drag_sensitivity"`
	LookSensitivity  float32 `yaml:"look_sensitivity"`
	FreeSpeed        float32 `yaml:"free_speed"`
	FreeSprintSpeed  float32 `yaml:"free_sprint_speed"`
}

// SimulationConfig holds time controls.
type SimulationConfig struct {
	TimeScale     float64 `yaml:"time_scale"`
	TimeScaleStep float64 `yaml:"time_scale_step"`
	Paused        bool    `yaml:"paused"`
	ShowOrbits    bool    `yaml:"show_orbits"`
	ShowStars     bool    `yaml:"show_stars"`
}

// AssetsConfig holds asset locations.
type AssetsConfig struct {
	TextureDir string `yaml:"texture_dir"`
}

// AudioConfig holds the optional ambient track.
type AudioConfig struct {
	AmbientTrack string  `yaml:"ambient_track"` // WAV file, empty disables audio
	Volume       float64 `yaml:"volume"`
	Muted        bool    `yaml:"muted"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Solar System",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Camera: CameraConfig{
			FOV:              45,
			MinFOV:           20,
			MaxFOV:           90,
			OrbitDistance:    45,
			OrbitMinDistance: 5,
			OrbitMaxDistance: 400,
			FocusDistance:    12,
			FocusMinDistance: 3,
			FocusMaxDistance: 400,
			DragSensitivity:  0.005,
			LookSensitivity:  0.002,
			FreeSpeed:        8,
			FreeSprintSpeed:  25,
		},
		Simulation: SimulationConfig{
			TimeScale:     1,
			TimeScaleStep: 0.25,
			ShowOrbits:    true,
			ShowStars:     true,
		},
		Assets: AssetsConfig{
			TextureDir: "textures",
		},
		Audio: AudioConfig{
			Volume: 0.7,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Screenshots: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "orrery",
		},
	}
}
