package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/bencyn-cli/bencyn/color"
	"github.com/bencyn-cli/bencyn/constant"
	"github.com/bencyn-cli/bencyn/content"
	"github.com/bencyn-cli/bencyn/icon"
	"github.com/bencyn-cli/bencyn/page"
	"github.com/bencyn-cli/bencyn/style"
	"github.com/bencyn-cli/bencyn/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(contactCmd)

	contactCmd.Flags().StringP("name", "n", "", "Your name")
	contactCmd.Flags().StringP("email", "e", "", "Your email address")
	contactCmd.Flags().StringP("phone", "p", "", "Your phone number (optional)")
	contactCmd.Flags().StringP("subject", "s", "", "Subject of the message")
	contactCmd.Flags().StringP("message", "m", "", "The message itself")
	contactCmd.Flags().BoolP("yes", "y", false, "Send without asking for confirmation")
	contactCmd.Flags().Bool("no-input", false, "Never prompt, fail on missing fields instead")
}

// contactCmd sends a message through the contact form.
// Missing fields are asked for interactively when stdin is a terminal.
var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a message through the contact form",
	Run: func(cmd *cobra.Command, args []string) {
		msg := content.ContactMessage{
			Name:    lo.Must(cmd.Flags().GetString("name")),
			Email:   lo.Must(cmd.Flags().GetString("email")),
			Phone:   lo.Must(cmd.Flags().GetString("phone")),
			Subject: lo.Must(cmd.Flags().GetString("subject")),
			Message: lo.Must(cmd.Flags().GetString("message")),
		}

		interactive := !lo.Must(cmd.Flags().GetBool("no-input")) && term.IsTerminal(int(os.Stdin.Fd()))
		if interactive {
			handleErr(promptMissing(&msg, cmd.Flags().Changed("phone")))

			if !lo.Must(cmd.Flags().GetBool("yes")) {
				var send bool
				confirm := survey.Confirm{
					Message: fmt.Sprintf("Send %q to %s?", strings.TrimSpace(msg.Subject), style.Bold(constant.Brand)),
					Default: true,
				}
				handleErr(survey.AskOne(&confirm, &send))
				if !send {
					return
				}
			}
		}

		form := page.FromConfig().NewForm()
		form.Set(page.FieldName, msg.Name)
		form.Set(page.FieldEmail, msg.Email)
		form.Set(page.FieldPhone, msg.Phone)
		form.Set(page.FieldSubject, msg.Subject)
		form.Set(page.FieldMessage, msg.Message)

		erase := util.PrintErasable(fmt.Sprintf("%s Sending...", icon.Get(icon.Progress)))
		outcome := form.Submit(cmd.Context())
		erase()

		switch outcome.Status {
		case page.FormSucceeded:
			cmd.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), outcome.Message)
		case page.FormInvalid:
			for _, field := range page.Fields {
				if text, ok := outcome.Errors[field]; ok {
					cmd.PrintErrf("%s %s\n", style.Fg(color.Purple)("--"+field), style.Fg(color.Red)(text))
				}
			}
			handleErr(errors.New(outcome.Message))
		default:
			handleErr(errors.New(outcome.Message))
		}
	},
}

// promptMissing asks for every field that would fail validation.
// The phone number is optional and only asked for when it was not given at all.
func promptMissing(msg *content.ContactMessage, phoneGiven bool) error {
	errs := page.Validate(*msg)

	ask := func(field string, target *string, prompt survey.Prompt) error {
		if _, invalid := errs[field]; !invalid {
			return nil
		}
		return survey.AskOne(prompt, target, survey.WithValidator(fieldValidator(field)))
	}

	if err := ask(page.FieldName, &msg.Name, &survey.Input{Message: "Name", Default: msg.Name}); err != nil {
		return err
	}
	if err := ask(page.FieldEmail, &msg.Email, &survey.Input{Message: "Email", Default: msg.Email}); err != nil {
		return err
	}
	if !phoneGiven {
		if err := survey.AskOne(&survey.Input{Message: "Phone (optional)"}, &msg.Phone); err != nil {
			return err
		}
	}
	if err := ask(page.FieldSubject, &msg.Subject, &survey.Input{Message: "Subject", Default: msg.Subject}); err != nil {
		return err
	}
	return ask(page.FieldMessage, &msg.Message, &survey.Multiline{Message: "Message"})
}

// fieldValidator reports the form's own message for a single field.
func fieldValidator(field string) survey.Validator {
	return func(answer any) error {
		value, _ := answer.(string)

		var msg content.ContactMessage
		switch field {
		case page.FieldName:
			msg.Name = value
		case page.FieldEmail:
			msg.Email = value
		case page.FieldSubject:
			msg.Subject = value
		case page.FieldMessage:
			msg.Message = value
		}

		if text, ok := page.Validate(msg)[field]; ok {
			return errors.New(text)
		}
		return nil
	}
}
