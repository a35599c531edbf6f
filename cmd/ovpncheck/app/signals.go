package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/groland11/openvpn-check-config/pkg/logger"
)

// setupSignalHandling cancels the run on SIGINT/SIGTERM. A second signal
// terminates immediately.
func (a *App) setupSignalHandling() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		interrupted := false
		for sig := range sigChan {
			a.log.WithFields(logger.Fields{
				"signal": sig.String(),
			}).Debug("Received system signal")

			if interrupted {
				a.log.Warn("Second interrupt, terminating immediately")
				os.Exit(130)
			}
			interrupted = true

			a.log.Info("Interrupt received, cancelling check")
			a.cancel()
			a.progress.Stop()
		}
	}()
}
