// Command smoke drives the full registration pipeline against a running
// instance: list events, register a throwaway team, confirm with a dummy
// screenshot and download the ticket PDF. Meant for manual verification
// after deploys; it writes rows into whatever upstream backend the server
// is configured with, so point it at a staging deployment.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "server base URL")
	redisAddr := flag.String("redis", "localhost:6379", "redis address (empty to skip the redis check)")
	slug := flag.String("event", "pixel2portal", "event slug to register for")
	flag.Parse()

	if *redisAddr != "" {
		if err := checkRedis(*redisAddr); err != nil {
			log.Fatalf("redis check failed: %v", err)
		}
		fmt.Println("redis: OK")
	}

	// Cookie jar keeps the session across the two flow steps
	jar, err := cookiejar.New(nil)
	if err != nil {
		log.Fatal(err)
	}
	client := &http.Client{Jar: jar, Timeout: 30 * time.Second}
	api := *baseURL + "/api/v1"

	listEvents(client, api)
	ticketID := register(client, api, *slug)
	confirm(client, api, *slug, ticketID)

	fmt.Println("\nsmoke run complete")
}

func checkRedis(addr string) error {
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Ping(ctx).Err()
}

func listEvents(client *http.Client, api string) {
	resp, err := client.Get(api + "/events")
	if err != nil {
		log.Fatalf("list events: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("GET /events -> %d (%d bytes)\n", resp.StatusCode, len(body))
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("unexpected status: %s", body)
	}
}

func register(client *http.Client, api, slug string) string {
	payload := map[string]interface{}{
		"team_name": "Smoke Test Team",
		"team_size": 1,
		"lead": map[string]string{
			"name":    "Smoke Tester",
			"usn":     "4PS00XX000",
			"college": "Smoke Test College",
			"contact": "9999999999",
			"email":   "smoke@example.com",
		},
	}
	body, _ := json.Marshal(payload)

	resp, err := client.Post(api+"/events/"+slug+"/register", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("register: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	fmt.Printf("POST /events/%s/register -> %d\n", slug, resp.StatusCode)
	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("registration failed: %s", raw)
	}

	var parsed struct {
		Data struct {
			TicketID string `json:"ticket_id"`
			UPILink  string `json:"upi_link"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		log.Fatalf("parse register response: %v", err)
	}
	fmt.Printf("  ticket: %s\n  upi:    %s\n", parsed.Data.TicketID, parsed.Data.UPILink)
	return parsed.Data.TicketID
}

func confirm(client *http.Client, api, slug, ticketID string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("screenshot", "smoke.png")
	if err != nil {
		log.Fatal(err)
	}
	part.Write([]byte("smoke-test-placeholder"))
	writer.WriteField("last_digits", "0000")
	writer.Close()

	resp, err := client.Post(api+"/events/"+slug+"/confirm", writer.FormDataContentType(), &buf)
	if err != nil {
		log.Fatalf("confirm: %v", err)
	}
	defer resp.Body.Close()

	fmt.Printf("POST /events/%s/confirm -> %d\n", slug, resp.StatusCode)
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		log.Fatalf("confirmation failed: %s", raw)
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("read ticket pdf: %v", err)
	}

	filename := "ticket_" + ticketID + ".pdf"
	if err := os.WriteFile(filename, pdf, 0644); err != nil {
		log.Fatalf("save ticket pdf: %v", err)
	}
	fmt.Printf("  barcode: %s\n  saved:   %s (%d bytes)\n",
		resp.Header.Get("X-Checkin-Barcode"), filename, len(pdf))
}
