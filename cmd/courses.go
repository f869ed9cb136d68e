package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List your courses",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openAll(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		if err := requireLogin(env); err != nil {
			return err
		}

		domains, err := env.Client.ActiveDomains(cmd.Context())
		if err != nil {
			return err
		}

		activeID, _, _ := env.Session.ActiveCourse()
		count := 0
		for _, d := range domains {
			for _, c := range d.Courses {
				marker := " "
				if c.ID == activeID {
					marker = "*"
				}
				fmt.Printf("%s %5d  %-40s %s (%d questions)\n",
					marker, c.ID, c.Name, d.Name, c.TotalQuestions)
				count++
			}
		}
		if count == 0 {
			fmt.Println("No courses. Subscribe to a domain first.")
		}
		return nil
	},
}

var coursesUseCmd = &cobra.Command{
	Use:   "use <course-id>",
	Short: "Set the active course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("course id must be a number: %q", args[0])
		}

		env, err := openAll(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		if err := requireLogin(env); err != nil {
			return err
		}

		detail, err := env.Client.CourseDetail(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("look up course %d: %w", id, err)
		}

		if err := env.Session.SetActiveCourse(cmd.Context(), detail.ID, detail.Name); err != nil {
			return err
		}
		fmt.Printf("Active course: %s\n", detail.Name)
		return nil
	},
}

func init() {
	coursesCmd.AddCommand(coursesUseCmd)
}
