package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mkorolev/focusdeck/internal/client/models"
)

// Todos fetches and prints the current todo list.
func (a *App) Todos(ctx context.Context) error {
	if !a.allowed(requireAuth(a.session)) {
		return nil
	}

	if err := a.todos.Fetch(ctx); err != nil {
		printlnFn("Error:", a.todos.Err())
		return err
	}

	items := a.todos.Todos()
	if len(items) == 0 {
		printlnFn("Nothing here. Use 'addtodo' to create a task.")
		return nil
	}
	for _, t := range items {
		mark := " "
		if t.IsCompleted {
			mark = "x"
		}
		line := fmt.Sprintf("[%s] #%d %s (%s)", mark, t.ID, t.Title, t.Priority)
		if t.Category != "" {
			line += " #" + t.Category
		}
		if t.DueDate != nil {
			line += " due " + t.DueDate.Format("2006-01-02")
		}
		printlnFn(line)
	}
	if cats := a.todos.Categories(); len(cats) > 0 {
		printlnFn("Categories:", strings.Join(cats, ", "))
	}
	return nil
}

// AddTodo prompts for task details and creates it on the server.
func (a *App) AddTodo(ctx context.Context) error {
	if !a.allowed(requireAuth(a.session)) {
		return nil
	}

	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	priority, err := getSimpleText(a.reader, "Priority low/medium/high (default medium)", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category (optional)", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.todos.Create(ctx, models.TodoCreate{
		Title:       title,
		Description: description,
		Priority:    priority,
		Category:    category,
	})
	if err != nil {
		printlnFn("Error:", a.todos.Err())
		return err
	}

	printlnFn(fmt.Sprintf("Created #%d %s", created.ID, created.Title))
	return nil
}

// CompleteTodo marks a task done.
func (a *App) CompleteTodo(ctx context.Context) error {
	if !a.allowed(requireAuth(a.session)) {
		return nil
	}

	id, err := GetInt(a.reader, "Todo id", 0, os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	completed := true
	updated, err := a.todos.Update(ctx, id, models.TodoUpdate{IsCompleted: &completed})
	if err != nil {
		printlnFn("Error:", a.todos.Err())
		return err
	}

	printlnFn(fmt.Sprintf("Done: #%d %s", updated.ID, updated.Title))
	return nil
}

// DeleteTodo removes a task.
func (a *App) DeleteTodo(ctx context.Context) error {
	if !a.allowed(requireAuth(a.session)) {
		return nil
	}

	id, err := GetInt(a.reader, "Todo id", 0, os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.todos.Delete(ctx, id); err != nil {
		printlnFn("Error:", a.todos.Err())
		return err
	}

	printlnFn("Deleted.")
	return nil
}

// FilterTodos sets the list filter and refetches.
func (a *App) FilterTodos(ctx context.Context) error {
	if !a.allowed(requireAuth(a.session)) {
		return nil
	}

	status, err := getSimpleText(a.reader, "Status completed/pending (empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	priority, err := getSimpleText(a.reader, "Priority (empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category (empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	search, err := getSimpleText(a.reader, "Search text (optional)", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.todos.SetFilter(ctx, models.TodoFilter{
		Status:   status,
		Priority: priority,
		Category: category,
		Search:   search,
	}); err != nil {
		printlnFn("Error:", a.todos.Err())
		return err
	}

	return a.Todos(ctx)
}
