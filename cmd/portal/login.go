package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session locally",
	RunE:  runLogin,
}

var (
	loginEmail    string
	loginPassword string
)

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password (prompted when omitted)")

	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	reader := bufio.NewReader(os.Stdin)

	if loginEmail == "" {
		fmt.Print("Email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		loginEmail = strings.TrimSpace(line)
	}

	if loginPassword == "" {
		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		loginPassword = strings.TrimSpace(line)
	}

	payload, err := a.client.Login(cmd.Context(), loginEmail, loginPassword)
	if err != nil {
		return err
	}

	if err := a.session.Save(payload); err != nil {
		return err
	}

	fmt.Printf("Signed in as %s\n", payload.User.FullName())
	return nil
}
