package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"om_business_case/pkg/api/benchmark"
	"om_business_case/pkg/api/report"
	"om_business_case/pkg/api/scenario"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

func loadConfig() ServerConfig {
	cfg := ServerConfig{Port: "8080"}

	data, err := os.ReadFile("config/server.yaml")
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			fmt.Printf("[WARNING] Failed to parse config/server.yaml: %v\n", err)
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	return cfg
}

func main() {
	// Load environment variables
	godotenv.Load()

	cfg := loadConfig()

	// Scenario endpoints
	http.HandleFunc("/api/scenario/compute", scenario.HandleCompute)
	http.HandleFunc("/api/scenario/compare", scenario.HandleCompare)

	// Benchmark endpoints
	http.HandleFunc("/api/benchmark/classify", benchmark.HandleClassify)
	http.HandleFunc("/api/benchmark/position", benchmark.HandlePosition)

	// Report endpoints
	http.HandleFunc("/api/report/executive-brief", report.HandleExecutiveBrief)
	http.HandleFunc("/api/report/cashflow-csv", report.HandleCashflowCSV)

	fmt.Printf("[API] Business case engine listening on :%s\n", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		fmt.Printf("[API] Server stopped: %v\n", err)
		os.Exit(1)
	}
}
