package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the motordoc ASCII art banner.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Warm gradient, ember to flame.
	s1 := termenv.String("                 _                _            ").Foreground(p.Color("#fbbf24"))
	s2 := termenv.String("  _ __ ___   ___ | |_ ___  _ __ __| | ___   ___ ").Foreground(p.Color("#f59e0b"))
	s3 := termenv.String(" | '_ ` _ \\ / _ \\| __/ _ \\| '__/ _` |/ _ \\ / __|").Foreground(p.Color("#f97316"))
	s4 := termenv.String(" | | | | | | (_) | || (_) | | | (_| | (_) | (__ ").Foreground(p.Color("#ef4444"))
	s5 := termenv.String(" |_| |_| |_|\\___/ \\__\\___/|_|  \\__,_|\\___/ \\___|").Foreground(p.Color("#dc2626"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}
