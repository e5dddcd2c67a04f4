// Command gimpheal heals image regions from the command line.
//
// Usage:
//
//	gimpheal heal photo.png --source 40,40 --stroke "120,80;124,82;128,85"
//	gimpheal heal *.jpg --suffix -fixed --jobs 4 --source 10,10 --stroke 64,64
//	gimpheal version
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := execute(ctx)
	stop()

	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
