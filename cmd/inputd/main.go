package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/hostplay/input-bridge/internal/config"
	"github.com/hostplay/input-bridge/internal/hostbridge"
	"github.com/hostplay/input-bridge/internal/input"
	"github.com/hostplay/input-bridge/internal/keyboard"
	"github.com/hostplay/input-bridge/internal/services/controller"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Controller type: %s", cfg.Input.ControllerType)

	// Open the physical keyboard when requested
	var device keyboard.Device
	opts := &input.Options{EnableKeyboard: cfg.Input.EnableKeyboard}
	if cfg.Input.EnableKeyboard {
		device, err = keyboard.NewDevice(&keyboard.DeviceConfig{
			Path: cfg.Input.KeyboardDevice,
			Grab: cfg.Input.GrabKeyboard,
		})
		if err != nil {
			log.Fatalf("Failed to open keyboard device: %v", err)
		}
		opts.Keyboard = device
	}

	// Create the controller session
	svc, err := controller.NewService(&controller.Config{
		Notifier: hostbridge.Nop{},
		Keyboard: device,
	})
	if err != nil {
		log.Fatalf("Failed to create controller session: %v", err)
	}

	ctrl, err := svc.RequestController(input.Type(cfg.Input.ControllerType), opts)
	if err != nil {
		log.Fatalf("Failed to request controller: %v", err)
	}

	// Log every button transition
	for name, b := range ctrl.Buttons() {
		name := name
		b.On(input.KeyDown, func(data ...any) {
			log.Printf("button %s down", name)
		})
		b.On(input.KeyUp, func(data ...any) {
			log.Printf("button %s up", name)
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	if device != nil {
		g.Go(func() error {
			return device.Run(ctx)
		})
	}

	g.Go(func() error {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		select {
		case sig := <-sigCh:
			log.Printf("Received signal %v, shutting down", sig)
			cancel()
		case <-ctx.Done():
		}
		return nil
	})

	log.Println("Input bridge is running. Press Ctrl+C to exit.")
	if err := g.Wait(); err != nil {
		log.Fatalf("Shutdown error: %v", err)
	}
}
