package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show progress for the active course",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openAll(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		if err := requireLogin(env); err != nil {
			return err
		}
		courseID, err := env.Session.RequireCourse()
		if err != nil {
			return err
		}
		_, name, _ := env.Session.ActiveCourse()

		prog, err := env.Client.PracticeProgress(cmd.Context(), courseID)
		if err != nil {
			return err
		}

		fmt.Printf("%s\n", name)
		fmt.Printf("  attempted: %d\n", prog.Attempted)
		fmt.Printf("  correct:   %d\n", prog.CorrectCount)
		fmt.Printf("  skipped:   %d\n", prog.SkippedCount)
		fmt.Printf("  flagged:   %d\n", prog.FlaggedCount)
		if prog.Submitted {
			fmt.Println("  submitted: yes")
		}

		showLog, _ := cmd.Flags().GetBool("log")
		if !showLog {
			return nil
		}

		events, err := env.Store.SyncRepo().Recent(cmd.Context(), courseID, 20)
		if err != nil {
			return fmt.Errorf("read sync log: %w", err)
		}
		if len(events) == 0 {
			return nil
		}

		fmt.Println("\nrecent sync events:")
		for _, ev := range events {
			status := "ok"
			if !ev.OK {
				status = "FAILED: " + ev.Error
			}
			fmt.Printf("  %s  %-8s q%-6d %s\n",
				ev.Timestamp.Format("2006-01-02 15:04:05"), ev.Action, ev.QuestionID, status)
		}
		return nil
	},
}

func init() {
	progressCmd.Flags().Bool("log", false, "Also print the recent local sync log")
}
