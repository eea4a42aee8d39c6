package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

// Simplified envelopes for the script
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type startResponse struct {
	Accepted     bool `json:"accepted"`
	Conversation struct {
		ID string `json:"id"`
	} `json:"conversation"`
}

type stateResponse struct {
	ActiveConversations []struct {
		ID       string `json:"id"`
		Loading  bool   `json:"loading"`
		Messages []struct {
			Content string `json:"content"`
			Sender  string `json:"sender"`
		} `json:"messages"`
	} `json:"active_conversations"`
}

var baseURL string

func sendRequest(method, url string, body interface{}) (*http.Response, envelope, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, envelope{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, envelope{}, err
	}
	defer resp.Body.Close()

	var env envelope
	err = json.NewDecoder(resp.Body).Decode(&env)
	return resp, env, err
}

func must(resp *http.Response, env envelope, err error) envelope {
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode != http.StatusOK {
		color.Red("Status: %s (%s)", resp.Status, env.Message)
		os.Exit(1)
	}
	color.Green("Status: %s %s", resp.Status, env.Message)
	return env
}

func main() {
	flag.StringVar(&baseURL, "base", "http://localhost:3000/api", "widget API base URL")
	aiID := flag.String("ai", "asst_epSsBL4xTTSse7v2yqk9E4IA", "attendant id")
	text := flag.String("message", "Olá, gostaria de agendar uma avaliação", "visitor message")
	flag.Parse()

	color.Cyan("🚀 Widget conversation simulation\n")

	color.Yellow("\n1. Catalog")
	must(sendRequest(http.MethodGet, "/catalog", nil))

	color.Yellow("\n2. Start conversation with %s", *aiID)
	env := must(sendRequest(http.MethodPost, "/chat/conversations", map[string]string{"ai_id": *aiID}))
	var started startResponse
	_ = json.Unmarshal(env.Data, &started)
	if !started.Accepted {
		color.Red("Attendant %s not in catalog", *aiID)
		os.Exit(1)
	}
	convID := started.Conversation.ID

	color.Yellow("\n3. Send %q", *text)
	must(sendRequest(http.MethodPut, "/chat/conversations/"+convID+"/draft", map[string]string{"text": *text}))
	must(sendRequest(http.MethodPost, "/chat/conversations/"+convID+"/send", nil))

	color.Yellow("\n4. Waiting for reply")
	start := time.Now()
	for time.Since(start) < 2*time.Minute {
		env = must(sendRequest(http.MethodGet, "/chat/state", nil))
		var state stateResponse
		_ = json.Unmarshal(env.Data, &state)
		for _, conv := range state.ActiveConversations {
			if conv.ID != convID || conv.Loading {
				continue
			}
			last := conv.Messages[len(conv.Messages)-1]
			fmt.Printf("AI (%v): %s\n", time.Since(start).Round(time.Millisecond), last.Content)
			color.Yellow("\n5. Close")
			must(sendRequest(http.MethodDelete, "/chat/conversations/"+convID, nil))
			return
		}
		time.Sleep(500 * time.Millisecond)
	}
	color.Red("No reply within timeout")
	os.Exit(1)
}
