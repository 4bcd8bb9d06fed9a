package main

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
	"go.uber.org/zap"

	"mug-scene/internal/app"
	"mug-scene/internal/camera"
	"mug-scene/internal/config"
	"mug-scene/internal/graphics"
	"mug-scene/internal/logger"
	"mug-scene/internal/scene"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		closer.Fatalln("config:", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		closer.Fatalln("logger:", err)
	}
	closer.Bind(logger.Sync)

	if err := glfw.Init(); err != nil {
		logger.Fatal("failed to initialize GLFW", zap.Error(err))
	}
	closer.Bind(glfw.Terminate)

	window, err := setupWindow(cfg)
	if err != nil {
		logger.Fatal("failed to create window", zap.Error(err))
	}

	sc, err := scene.New(scene.Textures{
		Body:    cfg.Textures.Body,
		Handle:  cfg.Textures.Handle,
		Table:   cfg.Textures.Table,
		Pyramid: cfg.Textures.Pyramid,
	}, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		logger.Fatal("failed to build scene", zap.Error(err))
	}
	closer.Bind(sc.Dispose)
	closer.Bind(graphics.DisposeTextures)

	cam := camera.New(startPosition)
	cam.MovementSpeed = cfg.Camera.MovementSpeed
	cam.MouseSensitivity = cfg.Camera.MouseSensitivity
	cam.MinZoom = cfg.Camera.MinZoom
	cam.MaxZoom = cfg.Camera.MaxZoom

	logger.Info("starting render loop",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("fps_limit", cfg.Graphics.FPSLimit),
	)

	app.New(window, cfg, cam, sc).Run()

	closer.Close()
}
