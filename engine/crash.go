package engine

// Go runs fn in a new goroutine with panic recovery.
// Use this instead of the go keyword for frontend goroutines so a crash
// can restore the terminal or close the connection before propagating.
// A nil onPanic re-panics after recovery.
func Go(fn func(), onPanic func(r any)) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				if onPanic == nil {
					panic(r)
				}
				onPanic(r)
			}
		}()
		fn()
	}()
}
