// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/seekspot/internal/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Show or change the trial and premium state",
	Long: `Session manages the local access state stored at session.path. A trial
gives a week of searches with more results per search; premium removes the
search limit.`,
}

var sessionStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current tier and remaining trial searches",
	RunE: withSession(func(sess *session.Session, args []string) error {
		printSession(sess)
		return nil
	}),
}

var sessionStartTrialCmd = &cobra.Command{
	Use:   "start-trial <email>",
	Short: "Start the free trial for an email address",
	Args:  cobra.ExactArgs(1),
	RunE: withSession(func(sess *session.Session, args []string) error {
		if err := sess.StartTrial(args[0]); err != nil {
			return err
		}
		printSession(sess)
		return nil
	}),
}

var sessionEndTrialCmd = &cobra.Command{
	Use:   "end-trial",
	Short: "End the trial (and any premium) and return to the free tier",
	RunE: withSession(func(sess *session.Session, args []string) error {
		if err := sess.EndTrial(); err != nil {
			return err
		}
		printSession(sess)
		return nil
	}),
}

var sessionPremiumCmd = &cobra.Command{
	Use:   "premium",
	Short: "Activate premium",
	RunE: withSession(func(sess *session.Session, args []string) error {
		if err := sess.ActivatePremium(); err != nil {
			return err
		}
		printSession(sess)
		return nil
	}),
}

func withSession(fn func(*session.Session, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		sess, closeSession, err := openSession(cfg)
		if err != nil {
			return err
		}
		defer closeSession()
		return fn(sess, args)
	}
}

func printSession(sess *session.Session) {
	st := sess.State()
	fmt.Printf("Tier:          %s\n", st.Tier())
	fmt.Printf("Result limit:  %d\n", st.ResultLimit())
	if st.TrialActive {
		fmt.Printf("Trial email:   %s\n", st.TrialEmail)
		fmt.Printf("Searches left: %d\n", st.SearchesRemaining)
		fmt.Printf("Days left:     %d (ends %s)\n", sess.RemainingDays(), st.TrialEndDate.Local().Format("2006-01-02 15:04"))
	}
}

func init() {
	sessionCmd.AddCommand(sessionStatusCmd)
	sessionCmd.AddCommand(sessionStartTrialCmd)
	sessionCmd.AddCommand(sessionEndTrialCmd)
	sessionCmd.AddCommand(sessionPremiumCmd)

	rootCmd.AddCommand(sessionCmd)
}
