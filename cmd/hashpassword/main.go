// Command hashpassword prints the bcrypt hash to put in ADMIN_PASSWORD_HASH.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xw1nchester/foodcatalog-backend/internal/auth/password"
	"go.uber.org/zap"
)

func main() {
	var plain string

	flag.StringVar(&plain, "password", "", "dashboard password")
	flag.Parse()

	if plain == "" {
		fmt.Fprintln(os.Stderr, "-password is required")
		os.Exit(2)
	}

	log, _ := zap.NewDevelopment()
	defer log.Sync()

	hash, err := password.New(log).GenerateHashFromPassword([]byte(plain))
	if err != nil {
		os.Exit(1)
	}

	fmt.Println(string(hash))
}
