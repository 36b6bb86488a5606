package testutils

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"
)

// RunIntegration runs m and purges the shared container afterwards, also on Ctrl+C.
// Packages with integration tests call it from their own TestMain.
func RunIntegration(m *testing.M) int {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Received interrupt signal, cleaning up Docker containers...")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	log.Println("Starting test suite with Docker cleanup enabled...")
	code := m.Run()

	log.Println("Tests completed, cleaning up Docker containers...")
	CleanupSharedContainer()
	return code
}
