package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/graphql-go/graphql"
	"github.com/ortelius/ghwire/events/modules/webhooks"
	"github.com/ortelius/ghwire/internal/services"
	"github.com/ortelius/ghwire/model"
	"github.com/ortelius/ghwire/util"
)

// DefaultLimit is the number of events returned when no limit is given.
const DefaultLimit = 50

// EventSource is the read side of the event store.
type EventSource interface {
	List(filter services.EventFilter) []webhooks.Event
	Get(id string) (webhooks.Event, bool)
}

// ReleaseView is a release flattened with its parsed tag and package URL.
type ReleaseView struct {
	ID               uint64          `json:"id"`
	TagName          string          `json:"tag_name"`
	TargetCommitish  string          `json:"target_commitish"`
	Name             *string         `json:"name"`
	Draft            bool            `json:"draft"`
	Prerelease       bool            `json:"prerelease"`
	HTMLURL          string          `json:"html_url"`
	Author           *model.User     `json:"author"`
	CreatedAt        model.DateTime  `json:"created_at"`
	PublishedAt      *model.DateTime `json:"published_at"`
	Version          *string         `json:"version"`
	Major            *int            `json:"major"`
	Minor            *int            `json:"minor"`
	Patch            *int            `json:"patch"`
	SemverPrerelease *string         `json:"semver_prerelease"`
	PURL             *string         `json:"purl"`
}

// NewReleaseView builds the view of rel published in repo, which may be nil.
func NewReleaseView(rel *model.Release, repo *model.Repo) ReleaseView {
	view := ReleaseView{
		ID:              rel.ID,
		TagName:         rel.TagName,
		TargetCommitish: rel.TargetCommitish,
		Name:            rel.Name,
		Draft:           rel.Draft,
		Prerelease:      rel.Prerelease,
		HTMLURL:         rel.HTMLURL,
		Author:          rel.Author,
		CreatedAt:       rel.CreatedAt,
		PublishedAt:     rel.PublishedAt,
	}
	if sv := util.ParseReleaseTag(rel.TagName); sv != nil {
		version := strings.TrimPrefix(util.CleanVersion(rel.TagName), "v")
		view.Version = &version
		view.Major, view.Minor, view.Patch = sv.Major, sv.Minor, sv.Patch
		if sv.Prerelease != "" {
			pre := sv.Prerelease
			view.SemverPrerelease = &pre
		}
	}
	if repo != nil {
		if purl, err := util.GitHubPURL(repo.FullName, rel.TagName); err == nil {
			view.PURL = &purl
		}
	}
	return view
}

func sourceEvent(p graphql.ResolveParams) (webhooks.Event, bool) {
	switch ev := p.Source.(type) {
	case webhooks.Event:
		return ev, true
	case *webhooks.Event:
		if ev != nil {
			return *ev, true
		}
	}
	return webhooks.Event{}, false
}

// ResolveDeployment returns the deployment of a deployment or deployment_status event.
func ResolveDeployment(p graphql.ResolveParams) (interface{}, error) {
	ev, _ := sourceEvent(p)
	switch payload := ev.Payload.(type) {
	case *webhooks.DeploymentEvent:
		return &payload.Deployment, nil
	case *webhooks.DeploymentStatusEvent:
		return &payload.Deployment, nil
	}
	return nil, nil
}

// ResolveDeploymentStatus returns the status of a deployment_status event.
func ResolveDeploymentStatus(p graphql.ResolveParams) (interface{}, error) {
	ev, _ := sourceEvent(p)
	if payload, ok := ev.Payload.(*webhooks.DeploymentStatusEvent); ok {
		return &payload.DeploymentStatus, nil
	}
	return nil, nil
}

// ResolveStatus returns the payload of a status event.
func ResolveStatus(p graphql.ResolveParams) (interface{}, error) {
	ev, _ := sourceEvent(p)
	if payload, ok := ev.Payload.(*webhooks.StatusEvent); ok {
		return payload, nil
	}
	return nil, nil
}

// ResolveRelease returns the release of a release event.
func ResolveRelease(p graphql.ResolveParams) (interface{}, error) {
	ev, _ := sourceEvent(p)
	if payload, ok := ev.Payload.(*webhooks.ReleaseEvent); ok {
		return NewReleaseView(&payload.Release, &payload.Repository), nil
	}
	return nil, nil
}

// ResolveRef returns the pushed ref of a push event.
func ResolveRef(p graphql.ResolveParams) (interface{}, error) {
	ev, _ := sourceEvent(p)
	if payload, ok := ev.Payload.(*webhooks.PushEvent); ok {
		return payload.Ref, nil
	}
	return nil, nil
}

// ResolveCommits returns the commits of a push event.
func ResolveCommits(p graphql.ResolveParams) (interface{}, error) {
	ev, _ := sourceEvent(p)
	if payload, ok := ev.Payload.(*webhooks.PushEvent); ok {
		return payload.Commits, nil
	}
	return nil, nil
}

// ResolvePayload re-encodes the decoded payload.
func ResolvePayload(p graphql.ResolveParams) (interface{}, error) {
	ev, ok := sourceEvent(p)
	if !ok || ev.Payload == nil {
		return nil, nil
	}
	data, err := json.Marshal(ev.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", ev.Name, err)
	}
	return string(data), nil
}

// ResolveEvents lists recorded events, newest first.
func ResolveEvents(source EventSource, name, repository string, since *model.DateTime, limit int) ([]webhooks.Event, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}
	return source.List(services.EventFilter{
		Name:       name,
		Repository: repository,
		Since:      since,
		Limit:      limit,
	}), nil
}

// ResolveReleases returns the releases recorded for repository, newest version
// first. A release seen in several deliveries is reported once, as of its most
// recent delivery.
func ResolveReleases(source EventSource, repository string) ([]ReleaseView, error) {
	if repository == "" {
		return nil, errors.New("repository is required")
	}
	seen := map[uint64]bool{}
	views := []ReleaseView{}
	for _, ev := range source.List(services.EventFilter{Name: "release", Repository: repository}) {
		payload, ok := ev.Payload.(*webhooks.ReleaseEvent)
		if !ok || seen[payload.Release.ID] {
			continue
		}
		seen[payload.Release.ID] = true
		views = append(views, NewReleaseView(&payload.Release, &payload.Repository))
	}
	sort.SliceStable(views, func(i, j int) bool {
		return util.CompareReleaseTags(views[i].TagName, views[j].TagName) > 0
	})
	return views, nil
}

// ResolveEvent returns one recorded event, or nil when it is unknown.
func ResolveEvent(source EventSource, id string) (interface{}, error) {
	ev, ok := source.Get(id)
	if !ok {
		return nil, nil
	}
	return ev, nil
}
