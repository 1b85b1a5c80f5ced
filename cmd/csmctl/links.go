package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csmaviation/website-api/internal/models"
	"github.com/csmaviation/website-api/internal/repository"
	"github.com/csmaviation/website-api/internal/service"
)

func linksCmd() *cobra.Command {
	var kind, id string

	cmd := &cobra.Command{
		Use:   "links",
		Short: "Reissue approve/reject links for a pending submission",
		Long: `Print fresh approve and reject URLs for a submission that is still pending,
for example when the original email expired or never arrived.

Example:
  csmctl links --kind vendor --id 3f2a...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			submissionKind, err := models.ParseSubmissionKind(kind)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			rt, err := openRuntime(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			tokens, err := service.NewActionTokenService(service.ActionTokenConfig{
				Secret:    rt.cfg.Approval.TokenSecret,
				TTL:       rt.cfg.Approval.TokenTTL,
				BaseURL:   rt.cfg.PublicBaseURL,
				APIPrefix: rt.cfg.APIPrefix,
			})
			if err != nil {
				return err
			}
			approvals := service.NewApprovalService(repository.NewSubmissionRepository(rt.db), tokens, nil, nil, repository.NewAuditRepository(rt.db), rt.logger)
			links, err := approvals.Links(ctx, submissionKind, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "approve: %s\n", links.ApproveURL)
			fmt.Fprintf(out, "reject:  %s\n", links.RejectURL)
			fmt.Fprintf(out, "expires: %s\n", links.ExpiresAt.Format("2006-01-02 15:04 MST"))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "vendor or testimonial")
	cmd.Flags().StringVar(&id, "id", "", "submission id")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
