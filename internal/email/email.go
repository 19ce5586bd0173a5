package email

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// SendEmail is our placeholder email function. Until a real provider is
// wired up, the message is logged so submissions can be tested end to end
// without an API key.
func SendEmail(to string, subject string, body string) error {
	log.Println("====================================================")
	log.Printf("--- NEW EMAIL (PLACEHOLDER) ---")
	log.Printf("To: %s", to)
	log.Printf("Subject: %s", subject)
	log.Println("--- Body ---")
	log.Println(body)
	log.Println("====================================================")

	return nil
}

// SendSubmissionNotification alerts the directory curator that a new
// business submission is waiting for review in the admin panel.
func SendSubmissionNotification(name, storeType, city, state, country string, categories []string) error {
	to := os.Getenv("ADMIN_NOTIFY_EMAIL")
	if to == "" {
		to = "admin@ecodirectory.local"
	}

	location := "Online"
	if city != "" && state != "" {
		location = fmt.Sprintf("%s, %s, %s", city, state, country)
	}

	subject := fmt.Sprintf("New Business Submission: %s", name)
	body := fmt.Sprintf(
		"New business submission\n\nName: %s\nType: %s\nLocation: %s\nCategories: %s\n\nThis submission needs review in the admin panel.",
		name, storeType, location, strings.Join(categories, ", "),
	)

	return SendEmail(to, subject, body)
}
