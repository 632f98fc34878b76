package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

var maxClients int = 1000
var requestsPerClient int = 20
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	token := login("admin", "admin123")
	fmt.Printf("logged in as admin\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxClients {
		wg.Add(1)
		go func() {
			for range requestsPerClient {
				doAction(token)
			}
			fmt.Printf("\rclient %v finished", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	total := maxClients * requestsPerClient
	fmt.Printf(
		"\n\rdid %v requests from %v clients: used time=%v seconds, throughput=%v request/second\n",
		total, maxClients, usedTime.Seconds(), float64(total)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func login(username, password string) string {
	payload := map[string]string{
		"username": username,
		"password": password,
	}
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/api/auth/login", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		log.Fatal("login failed:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("login rejected with status %v", resp.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Fatal("login response decode failed:", err)
	}
	return body.Token
}

func doAction(token string) {
	path := "/api/dashboard"
	if flipCoin() {
		path = "/api/alerts"
	}

	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("http://%s%s", httpHostPort, path), nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusTooManyRequests {
		fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
	}
}
