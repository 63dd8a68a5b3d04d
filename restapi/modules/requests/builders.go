package requests

import (
	"errors"
	"fmt"

	"github.com/ortelius/ghwire/model"
)

// ErrUnknownKind is returned by Build for a kind not in Kinds.
var ErrUnknownKind = errors.New("unknown request kind")

func required(name string, v *string) (string, error) {
	if v == nil {
		return "", fmt.Errorf("%s is required", name)
	}
	return *v, nil
}

func requiredState(v *string) (model.State, error) {
	s, err := required("state", v)
	if err != nil {
		return "", err
	}
	return model.ParseState(s)
}

// Build runs the builder for kind on in.
func Build(kind string, in PreviewInput) (model.Encoder, error) {
	switch kind {
	case "deployment":
		ref, err := required("ref", in.Ref)
		if err != nil {
			return nil, err
		}
		b := model.NewDeploymentRequest(ref)
		if in.Task != nil {
			b.Task(*in.Task)
		}
		if in.AutoMerge != nil {
			b.AutoMerge(*in.AutoMerge)
		}
		if in.RequiredContexts != nil {
			b.RequiredContexts(*in.RequiredContexts...)
		}
		if in.Payload != nil {
			b.Payload(in.Payload)
		}
		if in.Environment != nil {
			b.Environment(*in.Environment)
		}
		if in.Description != nil {
			b.Description(*in.Description)
		}
		return b.Build(), nil

	case "deployment_status":
		state, err := requiredState(in.State)
		if err != nil {
			return nil, err
		}
		b := model.NewDeploymentStatusRequest(state)
		if in.TargetURL != nil {
			b.TargetURL(*in.TargetURL)
		}
		if in.Description != nil {
			b.Description(*in.Description)
		}
		return b.Build(), nil

	case "status":
		state, err := requiredState(in.State)
		if err != nil {
			return nil, err
		}
		b := model.NewStatusRequest(state)
		if in.TargetURL != nil {
			b.TargetURL(*in.TargetURL)
		}
		if in.Description != nil {
			b.Description(*in.Description)
		}
		if in.Context != nil {
			b.Context(*in.Context)
		}
		return b.Build(), nil

	case "pull_edit":
		b := model.NewPullEdit()
		if in.Title != nil {
			b.Title(*in.Title)
		}
		if in.Body != nil {
			b.Body(*in.Body)
		}
		if in.State != nil {
			b.State(*in.State)
		}
		return b.Build(), nil

	case "pull":
		title, err := required("title", in.Title)
		if err != nil {
			return nil, err
		}
		head, err := required("head", in.Head)
		if err != nil {
			return nil, err
		}
		base, err := required("base", in.Base)
		if err != nil {
			return nil, err
		}
		b := model.NewPullRequest(title, head, base)
		if in.Body != nil {
			b.Body(*in.Body)
		}
		return b.Build(), nil

	case "issue":
		title, err := required("title", in.Title)
		if err != nil {
			return nil, err
		}
		b := model.NewIssueRequest(title)
		if in.Body != nil {
			b.Body(*in.Body)
		}
		if in.Assignee != nil {
			b.Assignee(*in.Assignee)
		}
		if in.Milestone != nil {
			b.Milestone(*in.Milestone)
		}
		if in.Labels != nil {
			b.Labels(*in.Labels...)
		}
		return b.Build(), nil

	case "gist":
		if in.Files == nil {
			return nil, fmt.Errorf("files is required")
		}
		b := model.NewGistRequest(in.Files)
		if in.Description != nil {
			b.Description(*in.Description)
		}
		if in.Public != nil {
			b.Public(*in.Public)
		}
		return b.Build(), nil

	case "release":
		tag, err := required("tag_name", in.TagName)
		if err != nil {
			return nil, err
		}
		b := model.NewReleaseRequest(tag)
		if in.Commitish != nil {
			b.Commitish(*in.Commitish)
		}
		if in.Name != nil {
			b.Name(*in.Name)
		}
		if in.Body != nil {
			b.Body(*in.Body)
		}
		if in.Draft != nil {
			b.Draft(*in.Draft)
		}
		if in.Prerelease != nil {
			b.Prerelease(*in.Prerelease)
		}
		return b.Build(), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
}
