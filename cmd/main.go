package main

import (
	"fmt"

	"github.com/cjbassi/mime-detective/cmd/cmd"
	"github.com/cjbassi/mime-detective/internal/env"
)

func main() {
	PrintLogo()

	_ = cmd.Execute()
}

func PrintLogo() {
	fmt.Println("           _                     _      _            _   _")
	fmt.Println(" _ __ ___ (_)_ __ ___   ___   __| | ___| |_ ___  ___| |_(_)_   _____")
	fmt.Println("| '_ ` _ \\| | '_ ` _ \\ / _ \\ / _` |/ _ \\ __/ _ \\/ __| __| \\ \\ / / _ \\")
	fmt.Println("| | | | | | | | | | | |  __/| (_| |  __/ ||  __/ (__| |_| |\\ V /  __/")
	fmt.Println("|_| |_| |_|_|_| |_| |_|\\___| \\__,_|\\___|\\__\\___|\\___|\\__|_| \\_/ \\___|")
	fmt.Println()
	fmt.Println("Magic-number MIME type detection")
	fmt.Println()
	fmt.Printf("Version:   %s\n", env.Version)
	fmt.Printf("Commit:    %s\n", env.CommitHash)
	fmt.Printf("Build Time: %s\n", env.BuildTime)
	fmt.Println(" ")
}
