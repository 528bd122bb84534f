// Command hashpw generates the ADMIN_PASSWORD_SALT and ADMIN_PASSWORD_HASH
// values for a given organizer password, to be placed in the environment or
// .env file consumed by config.Load.
package main

import (
	"flag"
	"fmt"
	"os"

	"eventlist/internal/adapters/auth"
)

const bcryptCost = 12

func main() {
	password := flag.String("password", "", "organizer password to hash")
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "usage: hashpw -password <organizer password>")
		os.Exit(2)
	}

	hasher := auth.NewBcryptHasher(bcryptCost)
	salt, err := hasher.GenerateSalt()
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate salt: %v\n", err)
		os.Exit(1)
	}
	hash, err := hasher.Hash(salt, *password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("ADMIN_PASSWORD_SALT=%s\n", salt)
	fmt.Printf("ADMIN_PASSWORD_HASH=%s\n", hash)
}
