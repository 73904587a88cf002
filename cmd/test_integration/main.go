package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	baseURL = "http://localhost:8080"
)

// Smoke test against a running server with the shipped data files loaded.
func main() {
	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting Integration Test...")

	// 1. Symptom list
	fmt.Println("1. Listing Symptoms...")
	if !sendRequest("GET", "/symptoms", nil) {
		fmt.Println("FAILED: List symptoms")
		os.Exit(1)
	}
	fmt.Println("PASSED: List symptoms")

	// 2. Diagnose
	fmt.Println("2. Diagnosing...")
	payload := map[string]interface{}{
		"symptoms": []string{"headache", "high_fever", "chills"},
	}
	if !sendRequest("POST", "/diagnose", payload) {
		fmt.Println("FAILED: Diagnose")
		os.Exit(1)
	}
	fmt.Println("PASSED: Diagnose")

	// 3. Disease drill-down
	fmt.Println("3. Fetching Disease Details...")
	if !sendRequest("GET", "/diseases/Malaria", nil) {
		fmt.Println("FAILED: Disease details")
		os.Exit(1)
	}
	fmt.Println("PASSED: Disease details")

	// 4. Reload
	fmt.Println("4. Reloading Data...")
	if !sendRequest("POST", "/reload", nil) {
		fmt.Println("FAILED: Reload")
		os.Exit(1)
	}
	fmt.Println("PASSED: Reload")
}

func sendRequest(method, endpoint string, payload interface{}) bool {
	var body io.Reader
	if payload != nil {
		jsonBytes, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequest(method, baseURL+endpoint, body)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		fmt.Printf("Request failed with status %d: %s\n", resp.StatusCode, string(respBody))
		return false
	}

	respBody, _ := io.ReadAll(resp.Body)
	fmt.Printf("Response: %s\n", string(respBody))

	return true
}
