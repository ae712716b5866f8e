package main

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	infoColor    = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
)

func printInfo(format string, args ...any) {
	infoColor.Print("• ")
	fmt.Printf(format+"\n", args...)
}

func printSuccess(format string, args ...any) {
	successColor.Print("✓ ")
	fmt.Printf(format+"\n", args...)
}

func printWarning(format string, args ...any) {
	warningColor.Print("⚠ ")
	fmt.Printf(format+"\n", args...)
}

func printError(format string, args ...any) {
	errorColor.Print("✗ ")
	fmt.Printf(format+"\n", args...)
}
