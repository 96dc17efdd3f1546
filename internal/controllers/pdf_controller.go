package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-pdf/fpdf"
	"gorm.io/gorm"

	"lge_services/internal/config"
	"lge_services/internal/models"
)

const pdfDateLayout = "02 Jan 2006"

type pdfLine struct {
	Label string
	Value string
}

// GeneratePDF renders one application row as a downloadable document. The
// type slug picks the table and the field layout.
func GeneratePDF(c *gin.Context) {
	applicationType := c.Param("applicationType")
	id := c.Param("id")

	var (
		title string
		lines []pdfLine
		err   error
	)

	switch applicationType {
	case "death-certificate":
		var app models.DeathCertificateApplication
		if err = config.DB.First(&app, "id = ?", id).Error; err == nil {
			title = "Death Certificate Application"
			lines = []pdfLine{
				{"Deceased Name", app.DeceasedFirstName + " " + app.DeceasedLastName},
				{"Date of Death", app.DateOfDeath.Format(pdfDateLayout)},
				{"Place of Death", app.PlaceOfDeath},
				{"Cause of Death", app.CauseOfDeath},
				{"Applicant Relationship", app.ApplicantRelationship},
				{"Phone Number", app.ApplicantPhoneNumber},
				{"Email", app.ApplicantEmailAddress},
				{"Address", app.ApplicantAddress},
				{"Status", app.Status},
			}
		}
	case "local-gov-id":
		var app models.LocalGovernmentIDApplication
		if err = config.DB.First(&app, "id = ?", id).Error; err == nil {
			title = "Local Government ID Application"
			lines = []pdfLine{
				{"Full Name", app.ApplicantFirstName + " " + app.ApplicantLastName},
				{"Date of Birth", app.DateOfBirth.Format(pdfDateLayout)},
				{"Gender", app.Gender},
				{"Home Address", app.HomeAddress},
				{"LGA of Origin", app.LGAOfOrigin},
				{"Status", app.Status},
			}
		}
	case "club-registration":
		var app models.ClubAssociationRegistration
		if err = config.DB.First(&app, "id = ?", id).Error; err == nil {
			title = "Club/Association Registration"
			lines = []pdfLine{
				{"Club Name", app.ClubAssociationName},
				{"Nature", app.NatureOfClubAssociation},
				{"Registration Address", app.RegistrationAddress},
				{"Contact Person", app.ContactPersonName},
				{"Registration Date", app.RegistrationDate.Format(pdfDateLayout)},
				{"Status", app.Status},
			}
		}
	case "waste-fees":
		var app models.WasteManagementFeePayment
		if err = config.DB.First(&app, "id = ?", id).Error; err == nil {
			title = "Waste Management Fees Payment"
			lines = []pdfLine{
				{"Property Address", app.PropertyAddress},
				{"Property Type", app.PropertyType},
				{"Payment Amount", app.PaymentAmount.StringFixed(2)},
				{"Payment Date", app.PaymentDate.Format(pdfDateLayout)},
				{"Transaction Reference", app.TransactionReference},
				{"Payment Status", app.PaymentStatus},
			}
		}
	case "street-registration":
		var app models.StreetRegistration
		if err = config.DB.First(&app, "id = ?", id).Error; err == nil {
			title = "Street Registration"
			lines = []pdfLine{
				{"Street Name", app.StreetName},
				{"LGA Location", app.LGALocation},
				{"Community", app.CommunityName},
				{"Number of Houses", strconv.Itoa(app.NumberOfHouses)},
				{"Status", app.Status},
			}
		}
	case "business-registration":
		var app models.BusinessRegistration
		if err = config.DB.First(&app, "id = ?", id).Error; err == nil {
			title = "Business Registration"
			lines = []pdfLine{
				{"Business Name", app.BusinessName},
				{"Business Type", app.BusinessType},
				{"Sector", app.BusinessSector},
				{"Address", app.BusinessAddress},
				{"LGA of Operation", app.LGAOfOperation},
				{"Registration Date", app.RegistrationDate.Format(pdfDateLayout)},
				{"Status", app.Status},
			}
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application type"})
		return
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No data found for this application"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate PDF", "error": err.Error()})
		}
		return
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range lines {
		pdf.CellFormat(0, 8, line.Label+": "+line.Value, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate PDF", "error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", applicationType+"-document.pdf"))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
