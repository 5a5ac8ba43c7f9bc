package gitrepo

import (
	"strconv"
	"strings"
)

const (
	statusLineSeparatorConstant         = "\n"
	carriageReturnConstant              = "\r"
	branchHeaderMarkerConstant          = "##"
	untrackedMarkerConstant             = "??"
	trackingSectionSeparatorConstant    = " ["
	trackingSectionTerminatorConstant   = "]"
	trackingTokenSeparatorConstant      = ","
	upstreamSeparatorConstant           = "..."
	aheadTokenPrefixConstant            = "ahead "
	behindTokenPrefixConstant           = "behind "
	minimumFileStatusLineLengthConstant = 3
	blankStatusColumnConstant           = ' '
	countBaseConstant                   = 10
	countBitSizeConstant                = 32
)

// Upstream describes the tracking branch of the current branch.
// Configured is false, with zero counts, when no tracking branch is set.
type Upstream struct {
	Name       string
	Configured bool
	Ahead      uint32
	Behind     uint32
}

// StatusCounts tallies changed paths. Staged and Unstaged overlap when a path has changes in both columns.
type StatusCounts struct {
	Staged    uint32
	Unstaged  uint32
	Untracked uint32
}

// StatusSummary is the normalized view of a porcelain status report.
type StatusSummary struct {
	Upstream Upstream
	Counts   StatusCounts
}

// ParseStatus interprets `git status --porcelain --branch` output.
// Lines it cannot interpret are skipped; it never fails.
func ParseStatus(statusText string) StatusSummary {
	summary := StatusSummary{}
	headerProcessed := false

	for _, rawLine := range strings.Split(statusText, statusLineSeparatorConstant) {
		line := strings.TrimSuffix(rawLine, carriageReturnConstant)

		switch {
		case strings.HasPrefix(line, branchHeaderMarkerConstant):
			if headerProcessed {
				continue
			}
			headerProcessed = true
			summary.Upstream = parseBranchHeader(strings.TrimPrefix(line, branchHeaderMarkerConstant))
		case strings.HasPrefix(line, untrackedMarkerConstant):
			summary.Counts.Untracked++
		case len(line) >= minimumFileStatusLineLengthConstant:
			if line[0] != blankStatusColumnConstant {
				summary.Counts.Staged++
			}
			if line[1] != blankStatusColumnConstant {
				summary.Counts.Unstaged++
			}
		}
	}

	return summary
}

// parseBranchHeader reads "main...origin/main [ahead 2, behind 1]" style headers.
func parseBranchHeader(header string) Upstream {
	upstream := Upstream{}

	branchSpecification := header
	if separatorIndex := strings.Index(header, trackingSectionSeparatorConstant); separatorIndex >= 0 {
		branchSpecification = header[:separatorIndex]
		trackingSection := header[separatorIndex+len(trackingSectionSeparatorConstant):]
		if terminatorIndex := strings.Index(trackingSection, trackingSectionTerminatorConstant); terminatorIndex >= 0 {
			trackingSection = trackingSection[:terminatorIndex]
		}
		for _, token := range strings.Split(trackingSection, trackingTokenSeparatorConstant) {
			trimmedToken := strings.TrimSpace(token)
			switch {
			case strings.HasPrefix(trimmedToken, aheadTokenPrefixConstant):
				upstream.Ahead = parseCount(strings.TrimPrefix(trimmedToken, aheadTokenPrefixConstant))
			case strings.HasPrefix(trimmedToken, behindTokenPrefixConstant):
				upstream.Behind = parseCount(strings.TrimPrefix(trimmedToken, behindTokenPrefixConstant))
			}
		}
	}

	if separatorIndex := strings.Index(branchSpecification, upstreamSeparatorConstant); separatorIndex >= 0 {
		upstream.Name = strings.TrimSpace(branchSpecification[separatorIndex+len(upstreamSeparatorConstant):])
		upstream.Configured = true
	}

	return upstream
}

// parseCount reads a commit count, treating anything unparsable as zero.
func parseCount(value string) uint32 {
	count, parseError := strconv.ParseUint(strings.TrimSpace(value), countBaseConstant, countBitSizeConstant)
	if parseError != nil {
		return 0
	}
	return uint32(count)
}
