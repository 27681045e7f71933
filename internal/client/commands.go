package client

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-fortnite-client/fortnite"
	"github.com/MKhiriev/go-fortnite-client/models"
)

type command struct {
	args         string
	minArgs      int
	needsSession bool
	run          func(ctx context.Context, api *fortnite.Client, args []string) (any, error)
}

var commands = map[string]command{
	"status": {
		run: func(ctx context.Context, api *fortnite.Client, _ []string) (any, error) {
			return api.CheckStatus(ctx)
		},
	},
	"news": {
		args: "[country]",
		run: func(ctx context.Context, api *fortnite.Client, args []string) (any, error) {
			return api.GetGameNews(ctx, arg(args, 0))
		},
	},
	"stats": {
		args:         "<account-id> [alltime|weekly]",
		minArgs:      1,
		needsSession: true,
		run: func(ctx context.Context, api *fortnite.Client, args []string) (any, error) {
			return api.GetBattleRoyaleStatsByID(ctx, args[0], models.TimeWindow(arg(args, 1)))
		},
	},
	"leaderboard": {
		args:         "<placetop1|kills|matchesplayed> <pc|ps4|xb1> <p2|p10|p9> [alltime|weekly] [limit]",
		minArgs:      3,
		needsSession: true,
		run: func(ctx context.Context, api *fortnite.Client, args []string) (any, error) {
			q := models.LeaderboardQuery{
				Type:     models.LeaderboardType(args[0]),
				Platform: models.Platform(args[1]),
				Group:    models.GroupType(args[2]),
				Window:   models.TimeWindow(arg(args, 3)),
			}
			if limit := arg(args, 4); limit != "" {
				n, err := strconv.Atoi(limit)
				if err != nil {
					return nil, fmt.Errorf("%w: limit %q", fortnite.ErrInvalidArgument, limit)
				}
				q.Limit = n
			}
			return api.GetLeaderboards(ctx, q)
		},
	},
	"store": {
		args:         "[locale]",
		needsSession: true,
		run: func(ctx context.Context, api *fortnite.Client, args []string) (any, error) {
			return api.GetStore(ctx, arg(args, 0))
		},
	},
	"lookup": {
		args:         "<display-name>",
		minArgs:      1,
		needsSession: true,
		run: func(ctx context.Context, api *fortnite.Client, args []string) (any, error) {
			return api.Lookup(ctx, strings.Join(args, " "))
		},
	},
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func usage() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "  %s %s\n", name, commands[name].args)
	}
	return b.String()
}
