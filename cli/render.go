package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/otonaba/otonaba-cli/auth"
	"github.com/otonaba/otonaba-cli/comments"
	"github.com/otonaba/otonaba-cli/internal/utils"
	"github.com/otonaba/otonaba-cli/messages"
	"github.com/otonaba/otonaba-cli/notifications"
	"github.com/otonaba/otonaba-cli/posts"
	"github.com/otonaba/otonaba-cli/users"
)

const timeLayout = "2006-01-02 15:04"

func newTabWriter(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

func renderPostList(out io.Writer, resp *posts.ListResponse) {
	w := newTabWriter(out)
	fmt.Fprintln(w, "ID\tCATEGORY\tTITLE\tAUTHOR\tVIEWS\tCOMMENTS\tLIKES\tCREATED")
	for _, p := range resp.Posts {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			p.ID, p.Category, truncate(p.Title, 40), p.AuthorNickname,
			p.Views, p.CommentCount, p.LikeCount, p.CreatedAt.Format(timeLayout))
	}
	w.Flush() //nolint:errcheck
	fmt.Fprintf(out, "\npage %d of %d (%d posts)\n",
		resp.Pagination.Page, resp.Pagination.TotalPages, resp.Pagination.Total)
}

func renderPost(out io.Writer, p *posts.Post) {
	fmt.Fprintf(out, "#%d [%s] %s\n", p.ID, p.Category, p.Title)
	fmt.Fprintf(out, "by %s (%s", p.AuthorNickname, p.AuthorAgeGroup)
	if p.AuthorRegion != "" {
		fmt.Fprintf(out, ", %s", p.AuthorRegion)
	}
	fmt.Fprintf(out, ") at %s, %d views\n\n", p.CreatedAt.Format(timeLayout), p.Views)
	fmt.Fprintln(out, p.Content)
	for _, img := range p.Images {
		fmt.Fprintf(out, "\n[image] %s\n", img.ImageURL)
	}
}

func renderComments(out io.Writer, list []comments.Comment) {
	if len(list) == 0 {
		fmt.Fprintln(out, "\nno comments")
		return
	}
	fmt.Fprintf(out, "\n%d comment(s):\n", len(list))
	for _, c := range list {
		fmt.Fprintf(out, "  [%d] %s (%s): %s\n", c.ID, c.AuthorNickname, c.CreatedAt.Format(timeLayout), c.Content)
	}
}

func renderMessageList(out io.Writer, list []messages.Message, sent bool) {
	w := newTabWriter(out)
	if sent {
		fmt.Fprintln(w, "ID\tTO\tSUBJECT\tREPLIES\tSENT")
	} else {
		fmt.Fprintln(w, "ID\tFROM\tSUBJECT\tREPLIES\tRECEIVED")
	}
	for _, m := range list {
		counterpart := m.SenderNickname
		if sent {
			counterpart = m.ReceiverNickname
		}
		subject := truncate(m.Subject, 40)
		if !sent && !m.IsRead {
			subject = "* " + subject
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
			m.ID, counterpart, subject, m.ReplyCount, m.CreatedAt.Format(timeLayout))
	}
	w.Flush() //nolint:errcheck
}

func renderMessage(out io.Writer, d *messages.Detail) {
	fmt.Fprintf(out, "#%d %s\n", d.ID, d.Subject)
	fmt.Fprintf(out, "from %s at %s\n\n", d.SenderNickname, d.CreatedAt.Format(timeLayout))
	fmt.Fprintln(out, d.Content)
	if len(d.Replies) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%d repl(ies):\n", len(d.Replies))
	for _, r := range d.Replies {
		fmt.Fprintf(out, "  %s (%s): %s\n", r.Nickname, r.CreatedAt.Format(timeLayout), r.Content)
	}
}

func renderNotifications(out io.Writer, list []notifications.Notification) {
	if len(list) == 0 {
		fmt.Fprintln(out, "no notifications")
		return
	}
	w := newTabWriter(out)
	fmt.Fprintln(w, "ID\tTYPE\tFROM\tPOST\tCONTENT\tWHEN")
	for _, n := range list {
		content := truncate(n.Content, 50)
		if !n.IsRead {
			content = "* " + content
		}
		post := "-"
		if id := utils.Value(n.PostID); id != 0 {
			post = strconv.FormatInt(id, 10)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			n.ID, n.Type, n.FromUserNickname, post, content, n.CreatedAt.Format(timeLayout))
	}
	w.Flush() //nolint:errcheck
}

func renderUser(out io.Writer, u *auth.User) {
	fmt.Fprintf(out, "%s (%s)\n", u.Nickname, u.Email)
	renderProfileDetails(out, u.AgeGroup, u.Gender, u.Region, u.TrustScore, u.CreatedAt)
}

func renderProfile(out io.Writer, p *users.Profile) {
	fmt.Fprintln(out, p.Nickname)
	renderProfileDetails(out, p.AgeGroup, p.Gender, p.Region, p.TrustScore, p.CreatedAt)
}

func renderProfileDetails(out io.Writer, ageGroup, gender, region string, trustScore int, createdAt time.Time) {
	fmt.Fprintf(out, "  age group:   %s\n", ageGroup)
	if gender != "" {
		fmt.Fprintf(out, "  gender:      %s\n", gender)
	}
	if region != "" {
		fmt.Fprintf(out, "  region:      %s\n", region)
	}
	fmt.Fprintf(out, "  trust score: %d\n", trustScore)
	if !createdAt.IsZero() {
		fmt.Fprintf(out, "  member since %s\n", createdAt.Format("2006-01-02"))
	}
}

func renderUserPosts(out io.Writer, list []users.PostSummary) {
	if len(list) == 0 {
		fmt.Fprintln(out, "\nno posts")
		return
	}
	fmt.Fprintf(out, "\n%d post(s):\n", len(list))
	w := newTabWriter(out)
	fmt.Fprintln(w, "ID\tCATEGORY\tTITLE\tVIEWS\tCOMMENTS\tLIKES\tCREATED")
	for _, p := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%s\n",
			p.ID, p.Category, truncate(p.Title, 40), p.Views,
			p.CommentCount, p.LikeCount, p.CreatedAt.Format(timeLayout))
	}
	w.Flush() //nolint:errcheck
}

func truncate(s string, max int) string {
	runes := []rune(strings.ReplaceAll(s, "\n", " "))
	if len(runes) <= max {
		return string(runes)
	}
	return string(runes[:max-1]) + "…"
}
