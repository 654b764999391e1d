package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	twift "github.com/roblack/twift-go"
	"github.com/roblack/twift-go/twconfig"
)

func loadDotenvBestEffort() {
	// Best effort: load from current working directory.
	_ = godotenv.Load()
	_ = godotenv.Overload(".env.twift")
}

func mustResolve() (*twift.Client, *twconfig.Selection) {
	cfg, err := twconfig.LoadGlobal()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to read config:", err)
		os.Exit(2)
	}
	sel, err := twconfig.Resolve(cfg, twconfig.ResolveOptions{
		ProfileName:       profileFlag,
		AllowEnvOverrides: true,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	baseURL := sel.BaseURL
	if baseURL == "" {
		baseURL = twift.DefaultBaseURL
	}

	// Prefer user context: write commands need it, read commands accept it.
	var c *twift.Client
	if sel.HasUserContext() {
		c, err = twift.NewWithOAuth1(baseURL, sel.ConsumerKey, sel.ConsumerSecret, sel.AccessToken, sel.AccessSecret)
	} else {
		c, err = twift.NewWithBearerToken(baseURL, sel.BearerToken)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return c, sel
}

func mustClient() *twift.Client {
	c, _ := mustResolve()
	return c
}

func printJSON(v any) {
	data, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(data))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
