package main

import (
	"fmt"
	"time"

	"github.com/gosynth/midisynth/internal/logger"
	"github.com/gosynth/midisynth/sdk/contracts"
	"github.com/gosynth/midisynth/sdk/synth"
	"gitlab.com/gomidi/midi/v2"
)

func main() {
	log := logger.NewZapLogger()

	driver, err := synth.NewSynthDriver("", "SF2",
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.InfoLevel),
		contracts.WithSystemDirectory("."),
		contracts.WithSampleRate(44100),
	)
	if err != nil {
		log.Error("Failed to initialize synth driver", log.Field().Error("error", err))
		return
	}
	defer driver.Close()

	outputs, _ := driver.ListOutputs()
	fmt.Println("Accepted output names:")
	for _, output := range outputs {
		fmt.Printf("  %s (%s)\n", output.Name, output.Manufacturer)
	}

	// Build wire-format messages with gomidi and feed them straight into
	// the driver's byte-level contract.
	play := func(msg midi.Message) {
		event := contracts.Event{
			Timestamp: uint64(time.Now().UTC().UnixNano()),
			Data:      msg.Bytes(),
		}
		if err := driver.WriteEvent(event); err != nil {
			log.Warn("Event rejected", log.Field().Error("error", err))
		}
	}

	play(midi.ProgramChange(0, 0)) // acoustic grand piano

	chord := []uint8{60, 64, 67} // C major
	for _, key := range chord {
		play(midi.NoteOn(0, key, 100))
	}
	time.Sleep(2 * time.Second)
	for _, key := range chord {
		play(midi.NoteOff(0, key))
	}

	// A short percussion hit on the drum channel.
	play(midi.NoteOn(9, 38, 127))
	time.Sleep(time.Second)
	play(midi.NoteOff(9, 38))

	time.Sleep(time.Second) // let the release tails decay
}
