// Package timer multiplexes many countdown and stopwatch timers by id.
//
// A Manager spawns one worker per timer on the configured execution
// environment, routes commands to it by id, and delivers its ticks back
// to the caller through the callbacks in Options. Callbacks run serially
// on the manager's dispatch goroutine.
//
// Basic usage:
//
//	m := timer.NewManager(timer.DefaultConfig())
//	defer m.Close()
//
//	h, err := m.CreateTimer(timer.Options{
//	    Kind:     timer.Countdown,
//	    Duration: 3 * time.Second,
//	    OnTick:   func(display, id string) { fmt.Println(display) },
//	})
//	if err != nil {
//	    return err
//	}
//	h.Start()
package timer
