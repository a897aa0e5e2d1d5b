package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"ascendops/internal/config"
	"ascendops/internal/infra"
	"ascendops/internal/models/request_models"
	"ascendops/internal/repositories"
	"ascendops/internal/services"
)

// Seeds the first founder account so the HTTP API has someone who can
// log in and create everyone else. Safe to re-run: an existing email is
// reported as a conflict, nothing is overwritten.
func main() {
	email := flag.String("email", "", "founder email address")
	name := flag.String("name", "", "founder display name")
	flag.Parse()

	reader := bufio.NewReader(os.Stdin)
	if *email == "" {
		*email = prompt(reader, "Founder email: ")
	}
	if *name == "" {
		*name = prompt(reader, "Founder name: ")
	}
	password := prompt(reader, "Password: ")

	if *email == "" || *name == "" || password == "" {
		fmt.Fprintln(os.Stderr, "email, name and password are all required")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	db := infra.InitPostgresql(cfg)
	defer infra.ClosePostgresql(db)

	userRepo := repositories.NewUserRepository(db)
	userService := services.NewUserService(userRepo)

	founder, err := userService.BootstrapFounder(context.Background(), request_models.BootstrapFounderRequest{
		Name:     *name,
		Email:    *email,
		Password: password,
	})
	if err != nil {
		log.Fatalf("Bootstrap failed: %v", err)
	}

	fmt.Printf("Founder account created: %s <%s>\n", founder.Name, founder.Email)
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("Error reading input: %v", err)
	}
	return strings.TrimSpace(line)
}
