package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nikhilkumar92976/FOOD-INSTA/client"
	"github.com/nikhilkumar92976/FOOD-INSTA/feed"

	"github.com/spf13/cobra"
)

const reelHelp = `keys:
  n, j, enter   next video
  p, k          previous video
  w <dy>        wheel scroll by dy
  t <y0> <y1>   touch swipe from y0 to y1
  g <n>         jump to video n
  l             like / unlike
  q             quit`

type ReelOptions struct {
	API   string
	Token string
	Mine  bool
}

func NewReelCommand() *cobra.Command {
	opts := &ReelOptions{}

	cmd := &cobra.Command{
		Use:   "reel",
		Short: "Scroll the food video feed in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			api := client.New(opts.API).WithToken(opts.Token)
			var src feed.Source = api
			if opts.Mine {
				src = client.PartnerSource{Client: api}
			}

			out := cmd.OutOrStdout()
			reel, err := feed.Load(cmd.Context(), src, &terminalPlayer{out: out})
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				return err
			}
			return runReel(cmd.InOrStdin(), out, reel)
		},
	}

	cmd.Flags().StringVar(&opts.API, "api", defaultAPI, "API base URL")
	cmd.Flags().StringVar(&opts.Token, "token", "", "session token (bearer)")
	cmd.Flags().BoolVar(&opts.Mine, "mine", false, "only the food partner's own videos (needs --token from login --partner)")

	return cmd
}

// terminalPlayer "plays" a video by printing it.
type terminalPlayer struct {
	out io.Writer
}

func (p *terminalPlayer) Play(index int, item feed.Item) {
	fmt.Fprintf(p.out, "> [%d] %s\n", index+1, item.Name)
	if item.Description != "" {
		fmt.Fprintf(p.out, "  %s\n", item.Description)
	}
	fmt.Fprintf(p.out, "  %s\n", item.Video)
}

func (p *terminalPlayer) Pause(int, feed.Item) {}

func runReel(in io.Reader, out io.Writer, reel *feed.Reel) error {
	if reel.Len() == 0 {
		fmt.Fprintln(out, "No videos found")
		return nil
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		cmd := ""
		if len(fields) > 0 {
			cmd = fields[0]
		}

		switch cmd {
		case "", "n", "j":
			reel.Advance(feed.Next)
		case "p", "k":
			reel.Advance(feed.Previous)
		case "w":
			if dy, ok := floatArg(fields, 1); ok {
				reel.Wheel(dy)
			}
		case "t":
			y0, ok0 := floatArg(fields, 1)
			y1, ok1 := floatArg(fields, 2)
			if ok0 && ok1 {
				reel.TouchStart(y0)
				reel.TouchMove(y1)
				reel.TouchEnd()
			}
		case "g":
			n, err := strconv.Atoi(strings.Join(fields[1:], ""))
			if err != nil {
				fmt.Fprintln(out, "usage: g <n>")
				continue
			}
			if err := reel.Select(n - 1); err != nil {
				fmt.Fprintf(out, "no video %d\n", n)
			}
		case "l":
			if it, ok := reel.Current(); ok {
				if reel.ToggleLike(it.ID) {
					fmt.Fprintf(out, "liked %s\n", it.Name)
				} else {
					fmt.Fprintf(out, "unliked %s\n", it.Name)
				}
			}
		case "q":
			return nil
		default:
			fmt.Fprintln(out, reelHelp)
		}
	}
	return sc.Err()
}

func floatArg(fields []string, i int) (float64, bool) {
	if i >= len(fields) {
		return 0, false
	}
	v, err := strconv.ParseFloat(fields[i], 64)
	return v, err == nil
}
