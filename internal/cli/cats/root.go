// Package cats implements the catsdb command line.
package cats

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"dbmanager/internal/model"
	"dbmanager/internal/repository"
)

// Store is the cat storage used by the command.
type Store interface {
	Create(ctx context.Context, name string, age int, features []string) (primitive.ObjectID, error)
	ListAll(ctx context.Context) ([]model.Cat, error)
	FindByName(ctx context.Context, name string) (*model.Cat, error)
	UpdateAge(ctx context.Context, name string, age int) (bool, error)
	AddFeature(ctx context.Context, name, feature string) (bool, error)
	DeleteByName(ctx context.Context, name string) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)
}

var _ Store = (*repository.CatRepository)(nil)

// Connector opens a Store and returns a function releasing it.
type Connector func(ctx context.Context) (Store, func(context.Context) error, error)

type options struct {
	create     *tupleValue
	getAll     bool
	getByName  string
	updateAge  *tupleValue
	addFeature *tupleValue
	deleteName string
	deleteAll  bool
}

func (o *options) selected() bool {
	return o.create.isSet() || o.getAll || o.getByName != "" || o.updateAge.isSet() ||
		o.addFeature.isSet() || o.deleteName != "" || o.deleteAll
}

// NewRootCmd returns the catsdb command.
func NewRootCmd(connect Connector) *cobra.Command {
	opts := &options{
		create:     newTupleValue(3),
		updateAge:  newTupleValue(2),
		addFeature: newTupleValue(2),
	}

	cmd := &cobra.Command{
		Use:   "catsdb",
		Short: "MongoDB cat management",
		Long: `Manage cat documents in MongoDB. Flags can be combined; they run in the order listed.

Examples:
  catsdb --create "Whiskers" 5 "Cute, Playful"
  catsdb --get-all
  catsdb --get-by-name "Whiskers"
  catsdb --update-age "Whiskers" 6
  catsdb --add-feature "Whiskers" "Fluffy"
  catsdb --delete "Whiskers"
  catsdb --delete-all
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.selected() {
				return cmd.Help()
			}
			store, release, err := connect(cmd.Context())
			if err != nil {
				return fmt.Errorf("could not connect to MongoDB: %w", err)
			}
			if release != nil {
				defer release(context.Background())
			}
			return run(cmd.Context(), cmd.OutOrStdout(), store, opts)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.Var(opts.create, "create", "Create a new cat record from `NAME AGE FEATURES`")
	flags.BoolVar(&opts.getAll, "get-all", false, "Retrieve all cat records")
	flags.StringVar(&opts.getByName, "get-by-name", "", "Retrieve a cat by `NAME`")
	flags.Var(opts.updateAge, "update-age", "Update the age of a cat: `NAME AGE`")
	flags.Var(opts.addFeature, "add-feature", "Add a feature to a cat: `NAME FEATURE`")
	flags.StringVar(&opts.deleteName, "delete", "", "Delete a cat by `NAME`")
	flags.BoolVar(&opts.deleteAll, "delete-all", false, "Delete all cat records")

	return cmd
}

// Execute runs the catsdb command with raw command line arguments.
func Execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	packed, err := packArgs(args)
	if err != nil {
		return err
	}
	cmd.SetArgs(packed)
	return cmd.ExecuteContext(ctx)
}

func run(ctx context.Context, out io.Writer, store Store, opts *options) error {
	if opts.create.isSet() {
		v := opts.create.values
		age, err := parseAge(v[1])
		if err != nil {
			return err
		}
		id, err := store.Create(ctx, v[0], age, splitFeatures(v[2]))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Created: %s\n", id.Hex())
	}

	if opts.getAll {
		cats, err := store.ListAll(ctx)
		if err != nil {
			return err
		}
		for _, cat := range cats {
			if err := printCat(out, cat); err != nil {
				return err
			}
		}
	}

	if opts.getByName != "" {
		cat, err := store.FindByName(ctx, opts.getByName)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			fmt.Fprintln(out, "Cat not found.")
		case err != nil:
			return err
		default:
			if err := printCat(out, *cat); err != nil {
				return err
			}
		}
	}

	if opts.updateAge.isSet() {
		v := opts.updateAge.values
		age, err := parseAge(v[1])
		if err != nil {
			return err
		}
		updated, err := store.UpdateAge(ctx, v[0], age)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Updated:", updated)
	}

	if opts.addFeature.isSet() {
		v := opts.addFeature.values
		added, err := store.AddFeature(ctx, v[0], strings.TrimSpace(v[1]))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Feature added:", added)
	}

	if opts.deleteName != "" {
		deleted, err := store.DeleteByName(ctx, opts.deleteName)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Deleted:", deleted)
	}

	if opts.deleteAll {
		n, err := store.DeleteAll(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Deleted all cats:", n > 0)
	}
	return nil
}

func parseAge(raw string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid age %q: %w", raw, err)
	}
	return age, nil
}

func printCat(out io.Writer, cat model.Cat) error {
	doc, err := bson.MarshalExtJSON(cat, false, false)
	if err != nil {
		return fmt.Errorf("encode cat: %w", err)
	}
	fmt.Fprintln(out, string(doc))
	return nil
}
