package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"sitelog/internal/lib/credentials"
	"sitelog/internal/models"
)

// token_generator prints a signed bearer token for manual API calls.
func main() {
	secret := flag.String("secret", os.Getenv("JWT_SECRET"), "signing secret, defaults to $JWT_SECRET")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	subject := flag.String("sub", "1", "user id")
	email := flag.String("email", "admin", "user email")
	role := flag.String("role", string(models.RoleAdmin), "admin or manager")
	team := flag.String("team", "", "team id, managers only")
	flag.Parse()

	if *secret == "" {
		fmt.Fprintln(os.Stderr, "secret is required: pass -secret or set JWT_SECRET")
		os.Exit(2)
	}

	token, err := credentials.NewIssuer(*secret, *ttl).Issue(*subject, *email, *role, *team)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("TOKEN=" + token)
}
