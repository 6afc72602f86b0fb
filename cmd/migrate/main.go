package main

import (
	"fmt"
	"frontdesk/config"
	"frontdesk/helper"
	"frontdesk/shared/password"
	"log"
	"os"
)

const (
	argLength          = 2
	hashPasswordLength = 3
)

func main() {
	if len(os.Args) < argLength {
		log.Fatal("Migration direction (up/down) is required")
	}

	// hash-password only prints, it never touches the database.
	if os.Args[1] == "hash-password" {
		hashPassword()

		return
	}

	action := helper.Action(os.Args[1])

	switch action {
	case helper.ActionUp, helper.ActionDown, helper.ActionDrop, helper.ActionStepUp, helper.ActionVersion:
		if err := helper.Runner(config.Get(), action); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatal("Invalid direction. Use 'up', 'down', 'drop', 'step-up', 'version' or 'hash-password <password>'")
	}
}

func hashPassword() {
	if len(os.Args) < hashPasswordLength {
		log.Fatal("Password is required")
	}

	hashed, err := password.Hash(os.Args[2])
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(hashed) //nolint:forbidigo
}
