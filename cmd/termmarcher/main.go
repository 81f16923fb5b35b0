package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/termmarcher/internal/raymarch"
	"github.com/lukaszgryglicki/termmarcher/internal/tui"
)

func main() {
	raymarch.Debug = os.Getenv("DEBUG") != ""
	raymarch.UseLocks = os.Getenv("SKIP_LOCKS") == ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg, err := raymarch.ConfigFromEnv()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if err := tui.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if raymarch.Debug {
		raymarch.DumpMarchStats(os.Stdout)
	}
	fmt.Println("Thanks for using!")
}
