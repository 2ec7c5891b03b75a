package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"taskdeck/internal/client"
	"taskdeck/internal/domain"

	"github.com/spf13/pflag"
)

const usage = `taskctl - taskdeck command line client

Usage:
  taskctl [flags] <command> [args]

Commands:
  register <username> <password>   create an account and log in
  login <username> <password>      log in
  logout                           drop the local session
  me                               show the logged-in identity
  list                             list your tasks
  add <title>                      create a task
  done <id>                        mark a task completed
  undo <id>                        mark a task not completed
  edit <id> <title>                change a task title
  rm <id>                          delete a task

Flags:
`

func main() {
	server := pflag.String("server", "http://localhost:8080", "API base URL")
	tokenFile := pflag.String("token-file", "", "token file (default ~/.taskdeck/token)")
	pflag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		pflag.PrintDefaults()
	}
	pflag.Parse()

	args := pflag.Args()
	if len(args) == 0 {
		pflag.Usage()
		os.Exit(2)
	}

	path := *tokenFile
	if path == "" {
		var err error
		path, err = client.DefaultTokenPath()
		if err != nil {
			fatal(err)
		}
	}

	c := client.New(*server, &client.FileTokenStore{Path: path})
	ctx := context.Background()

	if err := run(ctx, c, args); err != nil {
		fatal(err)
	}
}

func run(ctx context.Context, c *client.Client, args []string) error {
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "register":
		if len(rest) != 2 {
			return errors.New("usage: taskctl register <username> <password>")
		}
		if err := c.Register(ctx, rest[0], rest[1]); err != nil {
			return err
		}
		fmt.Println("registered and logged in")
		return nil

	case "login":
		if len(rest) != 2 {
			return errors.New("usage: taskctl login <username> <password>")
		}
		if err := c.Login(ctx, rest[0], rest[1]); err != nil {
			return err
		}
		fmt.Println("logged in")
		return nil

	case "logout":
		if err := c.Logout(); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil

	case "me":
		user, err := c.Me(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("#%d %s (since %s)\n", user.ID, user.Username, user.CreatedAt.Format("2006-01-02"))
		return nil

	case "list":
		tasks, err := c.Tasks(ctx)
		if err != nil {
			return err
		}
		if len(tasks) == 0 {
			fmt.Println("no tasks")
			return nil
		}
		for _, t := range tasks {
			mark := " "
			if t.Completed {
				mark = "x"
			}
			fmt.Printf("[%s] %d  %s\n", mark, t.ID, t.Title)
		}
		return nil

	case "add":
		if len(rest) != 1 {
			return errors.New("usage: taskctl add <title>")
		}
		task, err := c.CreateTask(ctx, rest[0])
		if err != nil {
			return err
		}
		fmt.Printf("created task %d\n", task.ID)
		return nil

	case "done", "undo":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		completed := cmd == "done"
		if _, err := c.UpdateTask(ctx, id, domain.TaskUpdate{Completed: &completed}); err != nil {
			return err
		}
		fmt.Printf("task %d updated\n", id)
		return nil

	case "edit":
		if len(rest) != 2 {
			return errors.New("usage: taskctl edit <id> <title>")
		}
		id, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid task id %q", rest[0])
		}
		if _, err := c.UpdateTask(ctx, id, domain.TaskUpdate{Title: &rest[1]}); err != nil {
			return err
		}
		fmt.Printf("task %d updated\n", id)
		return nil

	case "rm":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		if err := c.DeleteTask(ctx, id); err != nil {
			return err
		}
		fmt.Printf("task %d deleted\n", id)
		return nil

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func parseID(rest []string) (int64, error) {
	if len(rest) != 1 {
		return 0, errors.New("expected exactly one task id")
	}
	id, err := strconv.ParseInt(rest[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", rest[0])
	}
	return id, nil
}

func fatal(err error) {
	if errors.Is(err, client.ErrSessionExpired) {
		fmt.Fprintln(os.Stderr, "session expired, run: taskctl login <username> <password>")
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
