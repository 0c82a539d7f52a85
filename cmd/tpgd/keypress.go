package main

import (
	"github.com/eiannone/keyboard"
	log "github.com/sirupsen/logrus"
)

// waitForQuitKey blocks on single-key input without Enter and calls stop on
// q or Esc. If the terminal can not be opened the poller just keeps running
// until a signal arrives.
func waitForQuitKey(stop func()) {
	if err := keyboard.Open(); err != nil {
		log.Warnf("Interactive mode unavailable: %v", err)
		return
	}
	defer keyboard.Close()

	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			return
		}
		if char == 'q' || key == keyboard.KeyEsc {
			log.Info("Stop requested from keyboard")
			stop()
			return
		}
	}
}
