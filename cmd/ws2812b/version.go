package main

import "fmt"

// Set at link time with -X main.buildVersion=... -X main.buildTime=...
var buildTime, buildVersion string

func versionString() string {
	v := buildVersion
	if v == "" {
		v = "dev"
	}
	if buildTime == "" {
		return "ws2812b " + v
	}
	return fmt.Sprintf("ws2812b %s (built %s)", v, buildTime)
}
