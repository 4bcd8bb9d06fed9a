// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Textures TexturesConfig `yaml:"textures"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds window creation settings.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// GraphicsConfig holds rendering settings.
type GraphicsConfig struct {
	VSync    bool `yaml:"vsync"`
	FPSLimit int  `yaml:"fps_limit"` // 0 = uncapped
}

// CameraConfig holds free-look camera tuning.
type CameraConfig struct {
	MovementSpeed    float32 `yaml:"movement_speed"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	MinZoom          float32 `yaml:"min_zoom"` // degrees
	MaxZoom          float32 `yaml:"max_zoom"` // degrees
}

// TexturesConfig holds image paths for the scene objects.
type TexturesConfig struct {
	Body    string `yaml:"body"`
	Handle  string `yaml:"handle"`
	Table   string `yaml:"table"`
	Pyramid string `yaml:"pyramid"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Textured 3D Coffee Mug",
		},
		Graphics: GraphicsConfig{
			VSync:    true,
			FPSLimit: 0,
		},
		Camera: CameraConfig{
			MovementSpeed:    2.5,
			MouseSensitivity: 0.1,
			MinZoom:          1.0,
			MaxZoom:          45.0,
		},
		Textures: TexturesConfig{
			Body:    "assets/textures/cat.jpg",
			Handle:  "assets/textures/handle.jpg",
			Table:   "assets/textures/wood.jpg",
			Pyramid: "assets/textures/wood.jpg",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
