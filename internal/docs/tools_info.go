package docs

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// InfoArgument is the empty argument type shared by the informational tools.
type InfoArgument struct{}

// InfoHandler serves the static informational MCP tools. The texts are
// composed from the configured hosts so fixture deployments stay coherent.
type InfoHandler struct {
	service *Service
}

// NewInfoHandler creates a new informational tools handler.
func NewInfoHandler(service *Service) *InfoHandler {
	return &InfoHandler{
		service: service,
	}
}

// HandleSupportInfo returns support channels and contact information.
func (h *InfoHandler) HandleSupportInfo(ctx context.Context, req *mcp.CallToolRequest, args InfoArgument) (*mcp.CallToolResult, any, error) {
	s := h.service.Settings()
	var sb strings.Builder

	sb.WriteString("# UAB Research Computing Support Information\n\n")
	sb.WriteString("## Primary Documentation Site\n")
	sb.WriteString(s.SiteBaseURL + "\n\n")
	sb.WriteString("## Cheaha Access Portal\n")
	sb.WriteString(s.PortalBaseURL + "\n\n")
	sb.WriteString("## Getting Support\n\n")
	sb.WriteString("The UAB Research Computing team provides support through multiple channels:\n\n")
	sb.WriteString("### Office Hours\n")
	sb.WriteString("Visit the documentation site for current office hours information:\n")
	sb.WriteString(s.SiteBaseURL + "/help/office_hours\n\n")
	sb.WriteString("### Support Portal\n")
	sb.WriteString("For technical support, questions, and issues:\n")
	sb.WriteString(s.SiteBaseURL + "/help/support\n\n")
	sb.WriteString("### Contributing to Documentation\n")
	sb.WriteString("If you'd like to contribute to improving the documentation:\n")
	sb.WriteString(s.SiteBaseURL + "/contributing/contributor_guide/\n\n")
	sb.WriteString("## Quick Links\n\n")
	sb.WriteString(fmt.Sprintf("- **Main Documentation:** %s\n", s.SiteBaseURL))
	sb.WriteString(fmt.Sprintf("- **Cheaha Login:** %s\n", s.PortalBaseURL))
	sb.WriteString(fmt.Sprintf("- **Getting Started Guides:** %s/getting-started/\n", s.SiteBaseURL))
	sb.WriteString(fmt.Sprintf("- **Software Documentation:** %s/software/\n", s.SiteBaseURL))
	sb.WriteString(fmt.Sprintf("- **Storage & Data:** %s/storage/\n\n", s.SiteBaseURL))
	sb.WriteString("## About UAB Research Computing\n\n")
	sb.WriteString("UAB Research Computing is part of UAB IT, with a mission to serve and support\n")
	sb.WriteString("the UAB Research Community with all of their research computing and data needs.\n\n")
	sb.WriteString("Services include:\n")
	sb.WriteString("- High-Performance Computing (Cheaha cluster)\n")
	sb.WriteString("- Data storage and management\n")
	sb.WriteString("- Research software support\n")
	sb.WriteString("- Consultation and training\n")
	sb.WriteString("- Cloud computing integration\n\n")
	sb.WriteString("For the most up-to-date information, always refer to the official documentation\nat " + s.SiteBaseURL + "\n")

	return textResult(sb.String()), nil, nil
}

// HandleSections returns an overview of the documentation structure.
func (h *InfoHandler) HandleSections(ctx context.Context, req *mcp.CallToolRequest, args InfoArgument) (*mcp.CallToolResult, any, error) {
	s := h.service.Settings()
	var sb strings.Builder

	sb.WriteString("# UAB Research Computing Documentation Structure\n\n")
	sb.WriteString("The documentation is organized into the following main sections:\n\n")
	sb.WriteString("## 1. Getting Started\n")
	sb.WriteString("Learn the basics of using UAB Research Computing resources\n")
	sb.WriteString("- Introduction to Cheaha\n- Account setup and access\n- First steps tutorials\n- Basic HPC concepts\n\n")
	sb.WriteString("## 2. Help & Support\n")
	sb.WriteString("Get assistance with your research computing needs\n")
	sb.WriteString("- Office hours schedule\n- Support portal and ticketing\n- Contact information\n- FAQ and troubleshooting\n\n")
	sb.WriteString("## 3. Software & Applications\n")
	sb.WriteString("Information about available software and tools\n")
	sb.WriteString("- Installed software catalog\n- Module system (Lmod)\n- Custom software installation\n- Containers (Singularity/Apptainer)\n- Licensed software access\n\n")
	sb.WriteString("## 4. Storage & Data Management\n")
	sb.WriteString("Managing your research data\n")
	sb.WriteString("- Storage systems overview\n- Quota and allocations\n- Data transfer methods\n- Backup and archival\n- Data security and compliance\n\n")
	sb.WriteString("## 5. Job Scheduling (SLURM)\n")
	sb.WriteString("Running computational jobs on Cheaha\n")
	sb.WriteString("- SLURM basics and commands\n- Job submission scripts\n- Resource requests\n- Queue policies\n- Job arrays and dependencies\n\n")
	sb.WriteString("## 6. Best Practices\n")
	sb.WriteString("Guidelines for effective use of research computing resources\n")
	sb.WriteString("- Workflow optimization\n- Resource efficiency\n- Reproducible research\n- Collaboration and sharing\n\n")
	sb.WriteString("## 7. Contributing\n")
	sb.WriteString("How to contribute to the documentation\n")
	sb.WriteString("- Contributor guide\n- Documentation standards\n- Submitting changes\n\n")
	sb.WriteString("## Quick Access\n\n")
	sb.WriteString(fmt.Sprintf("- **Main Site:** %s\n", s.SiteBaseURL))
	sb.WriteString(fmt.Sprintf("- **Cheaha Portal:** %s\n", s.PortalBaseURL))
	sb.WriteString(fmt.Sprintf("- **GitHub Repository:** https://%s/%s\n\n", s.SourceHost, s.Repo))
	sb.WriteString("Use the 'search_documentation' tool to find specific topics within these sections,\n")
	sb.WriteString("or 'get_documentation_page' to retrieve full content from a specific page.\n")

	return textResult(sb.String()), nil, nil
}

// HandleQuickStart returns the Cheaha HPC quick start guide.
func (h *InfoHandler) HandleQuickStart(ctx context.Context, req *mcp.CallToolRequest, args InfoArgument) (*mcp.CallToolResult, any, error) {
	s := h.service.Settings()
	var sb strings.Builder

	sb.WriteString("# Cheaha HPC Quick Start Guide\n\n")
	sb.WriteString("## What is Cheaha?\n\n")
	sb.WriteString("Cheaha is the University of Alabama at Birmingham's high-performance computing (HPC)\n")
	sb.WriteString("cluster, providing powerful computational resources for research.\n\n")
	sb.WriteString("## Getting Started\n\n")
	sb.WriteString("### 1. Account Creation\n")
	sb.WriteString("- Visit the account creation page to set up your Cheaha account\n")
	sb.WriteString("- All researchers receive 5 TB of individual storage\n\n")
	sb.WriteString("### 2. Access Methods\n\n")
	sb.WriteString("**Primary Access - Web Portal (Recommended)**\n")
	sb.WriteString("The easiest way to access Cheaha is through the Open OnDemand web portal:\n")
	sb.WriteString("**" + s.PortalBaseURL + "**\n\n")
	sb.WriteString("Requirements:\n- UAB credentials\n- Duo 2-Factor Authentication\n\n")
	sb.WriteString("**Alternative - SSH Access**\n")
	sb.WriteString("For command-line access:\n```bash\nssh YOUR_BLAZERID@cheaha.rc.uab.edu\n```\n")
	sb.WriteString("(Connect to port 22)\n\n")
	sb.WriteString("### 3. Interactive Applications Available\n")
	sb.WriteString("Once logged in through the web portal, you can access:\n")
	sb.WriteString("- **File Browser** - Manage your files\n")
	sb.WriteString("- **Remote Desktop** - Full desktop environment\n")
	sb.WriteString("- **Jupyter Notebook/Lab** - Interactive computing\n")
	sb.WriteString("- **RStudio** - R development environment\n")
	sb.WriteString("- **MATLAB** - Mathematical computing\n\n")
	sb.WriteString("## Important Usage Guidelines\n\n")
	sb.WriteString("**Critical Rule**: Do not run compute-intensive tasks on login nodes\n")
	sb.WriteString("- Always use the SLURM job scheduler for computational work\n")
	sb.WriteString("- Choose the appropriate partition based on your needs\n\n")
	sb.WriteString("## Compute Partitions\n\n")
	sb.WriteString("### GPU Processing\n- **pascalnodes** - Pascal GPU nodes\n- **amperenodes** - Ampere GPU nodes\n\n")
	sb.WriteString("### General Purpose\n- **amd-hdr100** - General computing\n\n")
	sb.WriteString("### Time-based Partitions\n- **express** - Short jobs\n- **short** - Short-term computing\n- **medium** - Medium-term jobs\n- **long** - Long-running jobs\n\n")
	sb.WriteString("### Specialized\n- **largemem** - High memory requirements\n\n")
	sb.WriteString("## Software Access\n\n")
	sb.WriteString("- Software available through the **module system**\n")
	sb.WriteString("- **Anaconda recommended** for package management\n")
	sb.WriteString("- Need help with software? Submit a support ticket\n\n")
	sb.WriteString("## Getting Support\n\n")
	sb.WriteString("### Documentation Home\n" + s.SiteBaseURL + "\n\n")
	sb.WriteString("### Support Channels\n")
	sb.WriteString(fmt.Sprintf("- Office Hours: %s/help/office_hours\n", s.SiteBaseURL))
	sb.WriteString(fmt.Sprintf("- Support Portal: %s/help/support\n\n", s.SiteBaseURL))
	sb.WriteString("## Next Steps\n\n")
	sb.WriteString("Use the MCP tools to explore specific topics:\n")
	sb.WriteString("- `search_documentation(\"slurm tutorial\")` - Learn job submission\n")
	sb.WriteString("- `search_documentation(\"modules\")` - Software module system\n")
	sb.WriteString("- `search_documentation(\"partitions\")` - Compute node details\n")
	sb.WriteString("- `search_documentation(\"storage\")` - Data management\n\n")
	sb.WriteString("**Quick Tip**: Always submit computational jobs through SLURM to utilize compute nodes effectively.\n\n")
	sb.WriteString("For the most current information, always refer to " + s.SiteBaseURL + "\n")

	return textResult(sb.String()), nil, nil
}

// RegisterInfoTools registers the informational tools with an MCP server.
func RegisterInfoTools(server *mcp.Server, service *Service) {
	handler := NewInfoHandler(service)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_support_info",
		Description: "Get contact information, office hours, and support channels for UAB Research Computing",
	}, handler.HandleSupportInfo)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_documentation_sections",
		Description: "List the main sections and categories available in the UAB Research Computing documentation",
	}, handler.HandleSections)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_cheaha_quick_start",
		Description: "Get quick start information for accessing and using the Cheaha HPC cluster",
	}, handler.HandleQuickStart)
}
