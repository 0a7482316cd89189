package main

import (
	"flag"
	"fmt"
	"os"

	"greenhill-schools/app/config"
	"greenhill-schools/app/database"
	"greenhill-schools/app/models"
)

// Creates a user account from the command line, typically the first admin.
func main() {
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	role := flag.String("role", models.RoleAdmin, "role: admin, teacher, student or parent")
	flag.Parse()

	if *email == "" || *password == "" || *firstName == "" || *lastName == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := config.InitDB(cfg); err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer config.GetDB().Close()

	user := &models.User{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
	}
	if err := database.CreateUser(config.GetDB(), user, *password, *role); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created: %s %s (%s) role=%s\n", user.FirstName, user.LastName, user.Email, *role)
}
