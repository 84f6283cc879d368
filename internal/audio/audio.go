package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	initialized bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			// Square wave: positive or negative based on phase
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// PlayLaunch plays the sound for a ball leaving the launch point
func PlayLaunch() {
	if !initialized {
		return
	}
	// Short rising blip
	speaker.Play(squareWave(660, 30*time.Millisecond))
}

// PlayWallBounce plays the sound for a ball hitting a wall
func PlayWallBounce() {
	if !initialized {
		return
	}
	// Medium-pitched short beep
	speaker.Play(squareWave(440, 30*time.Millisecond))
}

// PlayBrickHit plays the sound for a ball chipping a brick
func PlayBrickHit() {
	if !initialized {
		return
	}
	// High-pitched short beep
	speaker.Play(squareWave(880, 40*time.Millisecond))
}

// PlayBrickDestroyed plays the sound for a brick breaking apart
func PlayBrickDestroyed() {
	if !initialized {
		return
	}
	// Two quick notes going up
	go func() {
		speaker.Play(squareWave(880, 60*time.Millisecond))
		time.Sleep(60 * time.Millisecond)
		speaker.Play(squareWave(1320, 80*time.Millisecond))
	}()
}

// PlayPickup plays the sound for collecting a pickup
func PlayPickup() {
	if !initialized {
		return
	}
	speaker.Play(squareWave(1100, 70*time.Millisecond))
}

// PlayGameOver plays the sound when a brick reaches the launch row
func PlayGameOver() {
	if !initialized {
		return
	}
	// Descending tone
	go func() {
		speaker.Play(squareWave(660, 100*time.Millisecond))
		time.Sleep(100 * time.Millisecond)
		speaker.Play(squareWave(440, 100*time.Millisecond))
		time.Sleep(100 * time.Millisecond)
		speaker.Play(squareWave(330, 150*time.Millisecond))
	}()
}
