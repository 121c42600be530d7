package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const DEFAULT_API_URL = "http://localhost:5000"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type step int

const (
	stepEnteringURL step = iota
	stepEnteringEmail
	stepEnteringPassword
	stepLoggingIn
	stepSeeding
	stepComplete
)

type model struct {
	step         step
	apiURL       string
	email        string
	password     string
	authToken    string
	currentInput string
	message      string
	categories   int
	users        int
	posts        int
	quitting     bool
}

type loginSuccessMsg struct {
	token string
}

type seedSuccessMsg struct {
	categories int
	users      int
	posts      int
}

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	apiURL := os.Getenv("BLOG_API_URL")
	if apiURL == "" {
		apiURL = DEFAULT_API_URL
	}
	return model{
		step:         stepEnteringURL,
		apiURL:       apiURL,
		currentInput: apiURL,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func loginUser(apiURL, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"email":    email,
			"password": password,
		}

		jsonData, _ := json.Marshal(payload)
		loginURL := strings.TrimRight(apiURL, "/") + "/api/auth/login"

		req, _ := http.NewRequest("POST", loginURL, bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("could not reach the API at %s: %w", apiURL, err)}
		}
		defer resp.Body.Close()

		var result map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("unexpected response from the API")}
		}

		if resp.StatusCode != http.StatusOK {
			errText, _ := result["error"].(string)
			if errText == "" {
				errText = fmt.Sprintf("login failed with status %d", resp.StatusCode)
			}
			return errMsg{fmt.Errorf("%s", errText)}
		}

		token, _ := result["token"].(string)
		if token == "" {
			return errMsg{fmt.Errorf("login succeeded but no token was returned")}
		}

		return loginSuccessMsg{token: token}
	}
}

func seedDatabase(apiURL, token string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 60 * time.Second}

		seedURL := strings.TrimRight(apiURL, "/") + "/api/seeder"
		req, _ := http.NewRequest("POST", seedURL, nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("seeding request failed: %w", err)}
		}
		defer resp.Body.Close()

		var result struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
			Error   string `json:"error"`
			Data    struct {
				Categories int `json:"categories"`
				Users      int `json:"users"`
				Posts      int `json:"posts"`
			} `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("unexpected response from the API")}
		}

		if resp.StatusCode != http.StatusCreated || !result.Success {
			errText := result.Error
			if errText == "" {
				errText = fmt.Sprintf("seeder returned status %d", resp.StatusCode)
			}
			return errMsg{fmt.Errorf("%s", errText)}
		}

		return seedSuccessMsg{
			categories: result.Data.Categories,
			users:      result.Data.Users,
			posts:      result.Data.Posts,
		}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			switch m.step {
			case stepEnteringURL:
				if m.currentInput != "" {
					m.apiURL = m.currentInput
				}
				m.currentInput = ""
				m.step = stepEnteringEmail
				return m, nil

			case stepEnteringEmail:
				if m.currentInput == "" {
					return m, nil
				}
				m.email = m.currentInput
				m.currentInput = ""
				m.step = stepEnteringPassword
				return m, nil

			case stepEnteringPassword:
				if m.currentInput == "" {
					return m, nil
				}
				m.password = m.currentInput
				m.currentInput = ""
				m.step = stepLoggingIn
				m.message = ""
				return m, loginUser(m.apiURL, m.email, m.password)

			case stepComplete:
				m.quitting = true
				return m, tea.Quit
			}

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}
			return m, nil

		default:
			if m.step == stepEnteringURL || m.step == stepEnteringEmail || m.step == stepEnteringPassword {
				if len(msg.String()) == 1 {
					m.currentInput += msg.String()
				}
			}
			return m, nil
		}

	case loginSuccessMsg:
		m.authToken = msg.token
		m.step = stepSeeding
		return m, seedDatabase(m.apiURL, m.authToken)

	case seedSuccessMsg:
		m.categories = msg.categories
		m.users = msg.users
		m.posts = msg.posts
		m.step = stepComplete
		return m, nil

	case errMsg:
		m.message = msg.Error()
		// back to the password prompt so the user can retry
		m.step = stepEnteringPassword
		return m, nil
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Blog Database Seeder"))
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString(errorStyle.Render("Error: " + m.message))
		b.WriteString("\n\n")
	}

	switch m.step {
	case stepEnteringURL:
		b.WriteString(promptStyle.Render("API URL: "))
		b.WriteString(inputStyle.Render(m.currentInput))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("(enter to accept)"))

	case stepEnteringEmail:
		b.WriteString(promptStyle.Render("Email: "))
		b.WriteString(inputStyle.Render(m.currentInput))

	case stepEnteringPassword:
		b.WriteString(promptStyle.Render("Password: "))
		b.WriteString(inputStyle.Render(strings.Repeat("*", len(m.currentInput))))

	case stepLoggingIn:
		b.WriteString("Logging in as " + m.email + "...")

	case stepSeeding:
		b.WriteString("Seeding the database. This wipes existing posts, categories and users...")

	case stepComplete:
		b.WriteString(successStyle.Render("Database seeded successfully!"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  Categories: %d\n", m.categories))
		b.WriteString(fmt.Sprintf("  Users:      %d\n", m.users))
		b.WriteString(fmt.Sprintf("  Posts:      %d\n", m.posts))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("(enter to exit)"))
	}

	b.WriteString("\n")
	return b.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
