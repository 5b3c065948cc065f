package routing

import "jira-notifier/internal/model"

// Classify maps an inbound event to its notification category. Pure
// function over the enumerated subtype; unknown subtypes classify to no
// category and the caller logs them rather than guessing.
//
// The update rows are ordered: comment detection wins over changelog
// inspection, so a comment attached to a transition still notifies as a
// comment, not twice.
func Classify(event model.IssueEvent) model.Category {
	switch event.Kind {
	case model.EventKindIssueCreated:
		if event.Subtype == model.SubtypeCreated {
			return model.CategoryCreated
		}
		return model.CategoryNone

	case model.EventKindIssueDeleted:
		return model.CategoryDeleted

	case model.EventKindIssueUpdated, model.EventKindCommentCreated:
		return classifyUpdate(event)

	default:
		return model.CategoryNone
	}
}

func classifyUpdate(event model.IssueEvent) model.Category {
	switch event.Subtype {
	case model.SubtypeCommented, model.SubtypeCommentEdited:
		return model.CategoryComment
	case model.SubtypeUpdated:
		if !event.HasChangelog {
			return model.CategoryComment
		}
		if !event.HasComment {
			return model.CategoryState
		}
		return model.CategoryNone
	case model.SubtypeGeneric:
		if event.HasChangelog && !event.HasComment {
			return model.CategoryStatus
		}
		return model.CategoryNone
	case model.SubtypeAssigned:
		if event.HasChangelog && !event.HasComment {
			return model.CategoryState
		}
		return model.CategoryNone
	default:
		return model.CategoryNone
	}
}

// MessageIdentity computes the stable identity that decides post-vs-update
// on the chat side. Two physical events sharing an identity update one
// standing message instead of posting twice.
func MessageIdentity(category model.Category, event model.IssueEvent) string {
	return "jira/" + category.Slug() + "/" + event.IssueKey + "/" + disambiguator(category, event)
}

// disambiguator picks the category-specific tail of the identity. Comments
// are addressed by their comment id so each comment gets its own message;
// status and state share the subtype so repeated transitions on one issue
// collapse into one message.
func disambiguator(category model.Category, event model.IssueEvent) string {
	switch category {
	case model.CategoryComment:
		if event.CommentID != "" {
			return event.CommentID
		}
		return "comment"
	case model.CategoryCreated:
		return "created"
	case model.CategoryDeleted:
		return "deleted"
	default:
		return string(event.Subtype)
	}
}
