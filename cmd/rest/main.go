package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ai-attendant-widget/internal/bootstrap"
	"ai-attendant-widget/internal/config"
	"ai-attendant-widget/internal/server"
	"ai-attendant-widget/internal/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer(cfg.Tracing)
	defer shutdownTracer(context.Background())

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Start Background Services
	go container.WebSocketHub.Run(ctx)

	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Panicf("Unable to subscribe to widget events: %v", err)
	}

	go func() {
		if err := container.CatalogService.Load(ctx); err != nil {
			log.Printf("Background: catalog load failed: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		log.Println("Shutting down...")
		container.PhoneService.Close()
		if container.NatsMirror != nil {
			container.NatsMirror.Close()
		}
		if err := srv.Shutdown(); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
	container.Interaction.Wait()
}
