// Package events defines the GraphQL types for recorded webhook events.
package events

import (
	"github.com/graphql-go/graphql"
	"github.com/ortelius/ghwire/graphql/modules/scalars"
	"github.com/ortelius/ghwire/model"
	"github.com/ortelius/ghwire/util"
)

// UserType represents a GitHub account.
var UserType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.ID},
		"login":      &graphql.Field{Type: graphql.String},
		"type":       &graphql.Field{Type: graphql.String},
		"html_url":   &graphql.Field{Type: graphql.String},
		"avatar_url": &graphql.Field{Type: graphql.String},
		"site_admin": &graphql.Field{Type: graphql.Boolean},
	},
})

// RepositoryType represents a repository. purl is its package URL.
var RepositoryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Repository",
	Fields: graphql.Fields{
		"id":             &graphql.Field{Type: graphql.ID},
		"name":           &graphql.Field{Type: graphql.String},
		"full_name":      &graphql.Field{Type: graphql.String},
		"owner":          &graphql.Field{Type: UserType},
		"private":        &graphql.Field{Type: graphql.Boolean},
		"fork":           &graphql.Field{Type: graphql.Boolean},
		"html_url":       &graphql.Field{Type: graphql.String},
		"default_branch": &graphql.Field{Type: graphql.String},
		"language":       &graphql.Field{Type: graphql.String},
		"created_at":     &graphql.Field{Type: scalars.DateTime},
		"updated_at":     &graphql.Field{Type: scalars.DateTime},
		"pushed_at":      &graphql.Field{Type: scalars.DateTime},
		"purl": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var fullName string
				switch repo := p.Source.(type) {
				case *model.Repo:
					fullName = repo.FullName
				case model.Repo:
					fullName = repo.FullName
				default:
					return nil, nil
				}
				purl, err := util.GitHubPURL(fullName, "")
				if err != nil {
					return nil, nil
				}
				return purl, nil
			},
		},
	},
})

// DeploymentType represents a deployment.
var DeploymentType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Deployment",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.ID},
		"sha":         &graphql.Field{Type: graphql.String},
		"ref":         &graphql.Field{Type: graphql.String},
		"task":        &graphql.Field{Type: graphql.String},
		"environment": &graphql.Field{Type: graphql.String},
		"description": &graphql.Field{Type: graphql.String},
		"creator":     &graphql.Field{Type: UserType},
		"created_at":  &graphql.Field{Type: scalars.DateTime},
		"updated_at":  &graphql.Field{Type: scalars.DateTime},
		"payload": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if d, ok := p.Source.(*model.Deployment); ok && len(d.Payload) > 0 {
					return string(d.Payload), nil
				}
				return nil, nil
			},
		},
	},
})

// DeploymentStatusType represents a deployment status.
var DeploymentStatusType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DeploymentStatus",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.ID},
		"state":       &graphql.Field{Type: graphql.String},
		"target_url":  &graphql.Field{Type: graphql.String},
		"description": &graphql.Field{Type: graphql.String},
		"creator":     &graphql.Field{Type: UserType},
		"created_at":  &graphql.Field{Type: scalars.DateTime},
		"updated_at":  &graphql.Field{Type: scalars.DateTime},
	},
})

// StatusType represents a commit status.
var StatusType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Status",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.ID},
		"sha":         &graphql.Field{Type: graphql.String},
		"state":       &graphql.Field{Type: graphql.String},
		"context":     &graphql.Field{Type: graphql.String},
		"target_url":  &graphql.Field{Type: graphql.String},
		"description": &graphql.Field{Type: graphql.String},
		"created_at":  &graphql.Field{Type: scalars.DateTime},
		"updated_at":  &graphql.Field{Type: scalars.DateTime},
	},
})

// ReleaseType represents a release with its tag broken into semver parts.
var ReleaseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Release",
	Fields: graphql.Fields{
		"id":                &graphql.Field{Type: graphql.ID},
		"tag_name":          &graphql.Field{Type: graphql.String},
		"target_commitish":  &graphql.Field{Type: graphql.String},
		"name":              &graphql.Field{Type: graphql.String},
		"draft":             &graphql.Field{Type: graphql.Boolean},
		"prerelease":        &graphql.Field{Type: graphql.Boolean},
		"html_url":          &graphql.Field{Type: graphql.String},
		"author":            &graphql.Field{Type: UserType},
		"created_at":        &graphql.Field{Type: scalars.DateTime},
		"published_at":      &graphql.Field{Type: scalars.DateTime},
		"version":           &graphql.Field{Type: graphql.String},
		"major":             &graphql.Field{Type: graphql.Int},
		"minor":             &graphql.Field{Type: graphql.Int},
		"patch":             &graphql.Field{Type: graphql.Int},
		"semver_prerelease": &graphql.Field{Type: graphql.String},
		"purl":              &graphql.Field{Type: graphql.String},
	},
})

// CommitAuthorType represents the author or committer of a pushed commit.
var CommitAuthorType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CommitAuthor",
	Fields: graphql.Fields{
		"name":     &graphql.Field{Type: graphql.String},
		"email":    &graphql.Field{Type: graphql.String},
		"username": &graphql.Field{Type: graphql.String},
	},
})

// PushCommitType represents one commit of a push.
var PushCommitType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PushCommit",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.String},
		"message":   &graphql.Field{Type: graphql.String},
		"timestamp": &graphql.Field{Type: scalars.DateTime},
		"url":       &graphql.Field{Type: graphql.String},
		"distinct":  &graphql.Field{Type: graphql.Boolean},
		"author":    &graphql.Field{Type: CommitAuthorType},
		"committer": &graphql.Field{Type: CommitAuthorType},
		"added":     &graphql.Field{Type: graphql.NewList(graphql.String)},
		"removed":   &graphql.Field{Type: graphql.NewList(graphql.String)},
		"modified":  &graphql.Field{Type: graphql.NewList(graphql.String)},
	},
})

// EventType represents a recorded webhook delivery. Only the payload field
// matching the event name is non-null.
var EventType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Event",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"event":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"action":      &graphql.Field{Type: graphql.String},
		"received_at": &graphql.Field{Type: scalars.DateTime},
		"repository":  &graphql.Field{Type: RepositoryType},
		"sender":      &graphql.Field{Type: UserType},
		"deployment": &graphql.Field{
			Type:    DeploymentType,
			Resolve: ResolveDeployment,
		},
		"deployment_status": &graphql.Field{
			Type:    DeploymentStatusType,
			Resolve: ResolveDeploymentStatus,
		},
		"status": &graphql.Field{
			Type:    StatusType,
			Resolve: ResolveStatus,
		},
		"release": &graphql.Field{
			Type:    ReleaseType,
			Resolve: ResolveRelease,
		},
		"ref": &graphql.Field{
			Type:    graphql.String,
			Resolve: ResolveRef,
		},
		"commits": &graphql.Field{
			Type:    graphql.NewList(PushCommitType),
			Resolve: ResolveCommits,
		},
		"payload": &graphql.Field{
			Type:        graphql.String,
			Description: "The decoded payload re-encoded as JSON",
			Resolve:     ResolvePayload,
		},
	},
})
