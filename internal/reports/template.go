package reports

import (
	"strconv"
	"strings"
	"time"
)

// ReportData is the full set of substitutions for one resolution report.
// Rendering is a pure function of this record: placeholders are replaced
// verbatim, with no escaping, and no state is shared across invocations.
type ReportData struct {
	ReportID       string
	SummaryID      int
	WardNo         int
	ProblemType    string
	DateReported   time.Time
	SummaryText    string
	ManagerName    string
	ManagerRemarks string
	ResolutionTime time.Time
	SignatureTime  time.Time
}

// One template serves both the canonical submit pipeline and the on-demand
// download path; the two must never diverge.
const bodyTemplate = `<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: 'Times New Roman', serif; font-size: 11pt; line-height: 1.4; color: #000; margin: 0; padding: 0; }
        .section { margin-bottom: 25px; }
        .section-title { font-size: 12pt; font-weight: bold; text-transform: uppercase; border-bottom: 1px solid #000; padding-bottom: 5px; margin-bottom: 15px; }
        .field-row { margin-bottom: 8px; display: flex; }
        .field-label { font-weight: bold; width: 140px; flex-shrink: 0; }
        .field-value { flex-grow: 1; }
        .statement-box { border: 1px solid #000; padding: 15px; min-height: 100px; }
        .declaration { margin-top: 40px; border-top: 1px solid #000; padding-top: 15px; }
        .watermark { position: fixed; top: 50%; left: 50%; transform: translate(-50%, -50%) rotate(-45deg); font-size: 80pt; color: rgba(0,0,0,0.05); z-index: -1; white-space: nowrap; }
        .meta-info { font-family: 'Courier New', monospace; font-size: 10pt; margin-bottom: 30px; }
    </style>
</head>
<body>
    <div class="watermark">OFFICIAL RECORD</div>

    <div class="meta-info">
        <div><strong>SUBJECT:</strong> WARD RESOLUTION REPORT</div>
        <div><strong>SUMMARY ID:</strong> {{SUMMARY_ID}}</div>
    </div>

    <div class="section">
        <div class="section-title">Issue Summary (System Generated)</div>
        <div class="field-row"><span class="field-label">Ward:</span><span class="field-value">{{WARD_NO}}</span></div>
        <div class="field-row"><span class="field-label">Problem Type:</span><span class="field-value">{{PROBLEM_TYPE}}</span></div>
        <div class="field-row"><span class="field-label">Date Reported:</span><span class="field-value">{{DATE_REPORTED}}</span></div>
        <div class="field-row"><span class="field-label">Source:</span><span class="field-value">Official CivicLens Portal</span></div>
        <div style="margin-top: 15px;">
            <div class="field-label">Summary Text:</div>
            <div class="statement-box" style="margin-top: 5px; min-height: 60px; background: #f9f9f9;">{{SUMMARY_TEXT}}</div>
        </div>
    </div>

    <div class="section">
        <div class="section-title">Manager Resolution Statement</div>
        <div class="field-row"><span class="field-label">Final Status:</span><span class="field-value">RESOLVED</span></div>
        <div class="field-row"><span class="field-label">Manager Name:</span><span class="field-value">{{MANAGER_NAME}}</span></div>
        <div class="field-row"><span class="field-label">Resolution Time:</span><span class="field-value">{{RESOLUTION_TIMESTAMP}}</span></div>
        <div style="margin-top: 15px;">
            <div class="field-label">Manager Remarks:</div>
            <div class="statement-box">{{MANAGER_REMARKS}}</div>
        </div>
    </div>

    <div class="declaration">
        <p>I, <strong>Ward {{WARD_NO}} Manager</strong>, hereby declare under penalty of administrative action that the above issue has been successfully resolved in accordance with civic governance standards. I certify that the remarks provided above are true and accurate.</p>

        <div style="margin-top: 40px; display: flex; justify-content: space-between;">
            <div>
                <div style="border-top: 1px solid #000; width: 200px; padding-top: 5px;">Signed (Electronic)</div>
                <div style="font-family: 'Courier New', monospace; font-size: 8pt;">{{SIGNATURE_TIMESTAMP}}</div>
            </div>
            <div style="text-align: right;">
                <div><strong>Manager Ward No. {{WARD_NO}}</strong></div>
                <div>Ward Manager, Annual Contract</div>
            </div>
        </div>
    </div>
</body>
</html>
`

const headerTemplate = `<div style="font-size: 10px; width: 100%; height: 100%; display: flex; align-items: center; justify-content: space-between; padding: 0 20mm 0 20mm; border-bottom: 2px solid black; box-sizing: border-box;">
    <div style="font-family: 'Times New Roman', serif; font-size: 18pt; font-weight: bold; letter-spacing: 1px;">CIVICLENS</div>
    <div style="font-family: 'Courier New', monospace; font-size: 8pt; text-align: right; line-height: 1.2;">
        <div>REPORT ID: {{REPORT_ID}}</div>
        <div>GENERATED: {{GENERATED_DATE}}</div>
    </div>
</div>`

const footerTemplate = `<div style="font-size: 8pt; width: 100%; display: flex; justify-content: center; padding-top: 5px; border-top: 1px solid black; font-family: 'Courier New', monospace; margin: 0 20mm;">
    Page <span class="pageNumber"></span> of <span class="totalPages"></span> &bull; Generated by CivicLens Governance Platform
</div>`

// RenderBody fills the document body template.
func RenderBody(data ReportData) string {
	r := strings.NewReplacer(
		"{{SUMMARY_ID}}", strconv.Itoa(data.SummaryID),
		"{{WARD_NO}}", strconv.Itoa(data.WardNo),
		"{{PROBLEM_TYPE}}", data.ProblemType,
		"{{DATE_REPORTED}}", data.DateReported.Format("1/2/2006"),
		"{{SUMMARY_TEXT}}", data.SummaryText,
		"{{MANAGER_NAME}}", data.ManagerName,
		"{{RESOLUTION_TIMESTAMP}}", data.ResolutionTime.UTC().Format(time.RFC3339),
		"{{MANAGER_REMARKS}}", data.ManagerRemarks,
		"{{SIGNATURE_TIMESTAMP}}", data.SignatureTime.UTC().Format(time.RFC3339),
	)
	return r.Replace(bodyTemplate)
}

// RenderHeader fills the repeating header band with the correlation id for
// this generation run and the generation date.
func RenderHeader(reportID string, generated time.Time) string {
	r := strings.NewReplacer(
		"{{REPORT_ID}}", reportID,
		"{{GENERATED_DATE}}", generated.UTC().Format("2006-01-02"),
	)
	return r.Replace(headerTemplate)
}

// RenderFooter returns the repeating footer band with page-number markers.
func RenderFooter() string {
	return footerTemplate
}
