package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/fishtrace/internal/fishtrace"
)

func main() {
	fishtrace.Debug = os.Getenv("DEBUG") != ""
	fishtrace.NoRender = os.Getenv("NO_RENDER") != ""
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

	cfg := "rays/config.json"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := fishtrace.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
